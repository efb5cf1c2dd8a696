// internals/features/library/loans/service/clock.go
package service

import "time"

// Clock di-inject supaya tanggal bisa difixasi di test;
// kode produksi memakai RealClock.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }
