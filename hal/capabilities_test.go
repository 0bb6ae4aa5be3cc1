package hal

import (
	"testing"

	"halcore-go/errcode"
	"halcore-go/outcome"
)

// ---- Fakes: complete implementations of each contract ----

type fakePin struct {
	level   bool
	dir     Direction
	pull    Pull
	drive   Drive
	fail    bool
	edges   int
	history []bool
}

func (p *fakePin) stat() outcome.Status {
	if p.fail {
		return outcome.ErrStatus(errcode.HardwareError)
	}
	return outcome.OkStatus()
}
func (p *fakePin) SetHigh() outcome.Status { p.set(true); return p.stat() }
func (p *fakePin) SetLow() outcome.Status  { p.set(false); return p.stat() }
func (p *fakePin) Toggle() outcome.Status  { p.set(!p.level); return p.stat() }
func (p *fakePin) Write(l bool) outcome.Status {
	p.set(l)
	return p.stat()
}
func (p *fakePin) Read() outcome.Outcome[bool] {
	if p.fail {
		return outcome.Err[bool](errcode.HardwareError)
	}
	return outcome.Ok(p.level)
}
func (p *fakePin) SetDirection(d Direction) outcome.Status { p.dir = d; return p.stat() }
func (p *fakePin) SetPull(pl Pull) outcome.Status          { p.pull = pl; return p.stat() }
func (p *fakePin) SetDrive(d Drive) outcome.Status         { p.drive = d; return p.stat() }
func (p *fakePin) set(l bool) {
	if l != p.level {
		p.edges++
	}
	p.level = l
	p.history = append(p.history, l)
}

type fakeUART struct {
	rx   []byte
	tx   []byte
	fail bool
	irq  int
}

func (u *fakeUART) WriteByte(b byte) outcome.Status {
	if u.fail {
		return outcome.ErrStatus(errcode.Timeout)
	}
	u.tx = append(u.tx, b)
	return outcome.OkStatus()
}
func (u *fakeUART) ReadByte() outcome.Outcome[byte] {
	if len(u.rx) == 0 {
		return outcome.Err[byte](errcode.Timeout)
	}
	b := u.rx[0]
	u.rx = u.rx[1:]
	return outcome.Ok(b)
}
func (u *fakeUART) Buffered() int { return len(u.rx) }

// fakeIRQUART layers the orthogonal interrupt capability on the UART fake.
type fakeIRQUART struct {
	fakeUART
}

func (u *fakeIRQUART) EnableIRQ() outcome.Status  { u.irq++; return outcome.OkStatus() }
func (u *fakeIRQUART) DisableIRQ() outcome.Status { u.irq--; return outcome.OkStatus() }
func (u *fakeIRQUART) ClearIRQ() outcome.Status   { return outcome.OkStatus() }

type fakeSPI struct {
	sent []byte
	next byte
	busy bool
	dma  bool
}

func (s *fakeSPI) Transfer(b byte) outcome.Outcome[byte] {
	s.sent = append(s.sent, b)
	return outcome.Ok(s.next)
}
func (s *fakeSPI) Transmit(w []byte) outcome.Status {
	s.sent = append(s.sent, w...)
	return outcome.OkStatus()
}
func (s *fakeSPI) Receive(r []byte) outcome.Status {
	for i := range r {
		r[i] = s.next
	}
	return outcome.OkStatus()
}
func (s *fakeSPI) IsBusy() bool { return s.busy }

type fakeDMASPI struct {
	fakeSPI
	reg uintptr
}

func (s *fakeDMASPI) EnableDMA() outcome.Status  { s.dma = true; return outcome.OkStatus() }
func (s *fakeDMASPI) DisableDMA() outcome.Status { s.dma = false; return outcome.OkStatus() }
func (s *fakeDMASPI) DataRegister() uintptr      { return s.reg }

type fakeADC struct {
	samples []uint16
	i       int
}

func (a *fakeADC) ReadChannel(ch uint8) outcome.Outcome[uint16] {
	if a.i >= len(a.samples) {
		return outcome.Err[uint16](errcode.Busy)
	}
	v := a.samples[a.i]
	a.i++
	return outcome.Ok(v)
}
func (a *fakeADC) Resolution() uint8 { return 10 }

type fakePWM struct {
	top  uint16
	duty map[uint8]uint16
	sets int
}

func (p *fakePWM) SetTop(top uint16) outcome.Status { p.top = top; return outcome.OkStatus() }
func (p *fakePWM) Top() uint16                      { return p.top }
func (p *fakePWM) SetDuty(ch uint8, d uint16) outcome.Status {
	if p.duty == nil {
		p.duty = map[uint8]uint16{}
	}
	p.duty[ch] = d
	p.sets++
	return outcome.OkStatus()
}
func (p *fakePWM) Enable(ch uint8, on bool) outcome.Status { return outcome.OkStatus() }

type fakeTimer struct {
	running bool
	count   uint32
}

func (t *fakeTimer) Start(periodMicros uint32) outcome.Status {
	if periodMicros == 0 {
		return outcome.ErrStatus(errcode.InvalidParameter)
	}
	t.running = true
	return outcome.OkStatus()
}
func (t *fakeTimer) Stop() outcome.Status {
	t.running = false
	return outcome.OkStatus()
}
func (t *fakeTimer) Count() outcome.Outcome[uint32] { return outcome.Ok(t.count) }
func (t *fakeTimer) Running() bool                  { return t.running }

// ---- Contract satisfaction, checked at compile time ----

var (
	_ GPIOPin    = (*fakePin)(nil)
	_ UART       = (*fakeUART)(nil)
	_ UART       = (*fakeIRQUART)(nil)
	_ IRQCapable = (*fakeIRQUART)(nil)
	_ SPI        = (*fakeSPI)(nil)
	_ SPI        = (*fakeDMASPI)(nil)
	_ DMACapable = (*fakeDMASPI)(nil)
	_ ADC        = (*fakeADC)(nil)
	_ PWM        = (*fakePWM)(nil)
	_ Timer      = (*fakeTimer)(nil)
)

// incompletePin shadows SetDrive with the wrong return type, so it must NOT
// satisfy GPIOPin. Uncommenting the assert is the negative witness; the
// compiler rejects it naming the offending method:
//
//	var _ GPIOPin = (*incompletePin)(nil) // wrong type for method SetDrive
//
// Adding the missing operation with the correct signature (delete the shadow)
// makes the assert compile again.
type incompletePin struct{ fakePin }

func (p *incompletePin) SetDrive(d Drive) bool { return true }

var _ = incompletePin{}

// ---- Generic algorithm tests ----

func TestPulse(t *testing.T) {
	p := &fakePin{}
	if s := Pulse(p, 3); s.IsErr() {
		t.Fatalf("Pulse failed: %v", s.Kind())
	}
	if p.edges != 6 {
		t.Fatalf("edges = %d, want 6", p.edges)
	}
	if Pulse(p, -1).Kind() != errcode.InvalidParameter {
		t.Fatal("negative count accepted")
	}
	p.fail = true
	if Pulse(p, 1).Kind() != errcode.HardwareError {
		t.Fatal("pin failure not propagated")
	}
}

func TestWriteAllAndReadExact(t *testing.T) {
	u := &fakeUART{rx: []byte{1, 2, 3}}
	if r := WriteAll(u, []byte("hi")); !r.IsOK() || r.Value() != 2 {
		t.Fatalf("WriteAll = %+v", r)
	}
	if string(u.tx) != "hi" {
		t.Fatalf("tx = %q", u.tx)
	}

	buf := make([]byte, 3)
	if r := ReadExact(u, buf); !r.IsOK() || buf[2] != 3 {
		t.Fatalf("ReadExact = %+v buf=%v", r, buf)
	}
	// Empty receive queue times out.
	if r := ReadExact(u, buf); r.Kind() != errcode.Timeout {
		t.Fatal("empty read did not time out")
	}

	u.fail = true
	if r := WriteAll(u, []byte{9}); r.Kind() != errcode.Timeout {
		t.Fatal("write failure not propagated")
	}
}

func TestTransferAll(t *testing.T) {
	s := &fakeSPI{next: 0xEE}
	rx := make([]byte, 2)
	if st := TransferAll(s, []byte{0xA, 0xB}, rx); st.IsErr() {
		t.Fatalf("TransferAll failed: %v", st.Kind())
	}
	if rx[0] != 0xEE || rx[1] != 0xEE || len(s.sent) != 2 {
		t.Fatalf("rx=%v sent=%v", rx, s.sent)
	}
	if TransferAll(s, []byte{1, 2}, rx[:1]).Kind() != errcode.InvalidParameter {
		t.Fatal("short rx accepted")
	}
	s.busy = true
	if TransferAll(s, []byte{1}, rx).Kind() != errcode.Busy {
		t.Fatal("busy device accepted")
	}
}

func TestReadAveraged(t *testing.T) {
	a := &fakeADC{samples: []uint16{100, 200, 300, 400}}
	if r := ReadAveraged(a, 0, 4); !r.IsOK() || r.Value() != 250 {
		t.Fatalf("ReadAveraged = %+v", r)
	}
	if ReadAveraged(a, 0, 0).Kind() != errcode.InvalidParameter {
		t.Fatal("n=0 accepted")
	}
	// Exhausted samples surface the device failure.
	if ReadAveraged(a, 0, 1).Kind() != errcode.Busy {
		t.Fatal("device failure not propagated")
	}
}

func TestSetDutyPercent(t *testing.T) {
	p := &fakePWM{top: 1000}
	if s := SetDutyPercent(p, 0, 25); s.IsErr() {
		t.Fatal("SetDutyPercent failed")
	}
	if p.duty[0] != 250 {
		t.Fatalf("duty = %d, want 250", p.duty[0])
	}
	// Clamped to 100%.
	SetDutyPercent(p, 0, 200)
	if p.duty[0] != 1000 {
		t.Fatalf("duty = %d, want 1000", p.duty[0])
	}
}

func TestFadePWM(t *testing.T) {
	p := &fakePWM{top: 100}
	if s := FadePWM(p, 1, 0, 80, 10, 4); s.IsErr() {
		t.Fatal("FadePWM failed")
	}
	if p.duty[1] != 80 {
		t.Fatalf("final duty = %d, want 80", p.duty[1])
	}
	if p.sets == 0 {
		t.Fatal("no intermediate steps set")
	}
}

func TestReadBurstCombinedConstraint(t *testing.T) {
	u := &fakeIRQUART{fakeUART: fakeUART{rx: []byte{7, 8}}}
	buf := make([]byte, 2)
	if r := ReadBurst(u, buf); !r.IsOK() || buf[0] != 7 {
		t.Fatalf("ReadBurst = %+v buf=%v", r, buf)
	}
	if u.irq != 0 {
		t.Fatalf("IRQ not balanced: %d", u.irq)
	}
}

func TestTransmitDMACombinedConstraint(t *testing.T) {
	s := &fakeDMASPI{reg: 0x4000}
	if st := TransmitDMA(s, []byte{1, 2, 3}); st.IsErr() {
		t.Fatalf("TransmitDMA failed: %v", st.Kind())
	}
	if len(s.sent) != 3 || s.dma {
		t.Fatalf("sent=%v dma=%v", s.sent, s.dma)
	}
	bad := &fakeDMASPI{}
	if TransmitDMA(bad, nil).Kind() != errcode.NotSupported {
		t.Fatal("zero data register accepted")
	}
}

func TestRestart(t *testing.T) {
	tm := &fakeTimer{}
	if s := Restart(tm, 1000); s.IsErr() || !tm.Running() {
		t.Fatal("Restart on stopped timer failed")
	}
	if s := Restart(tm, 2000); s.IsErr() || !tm.Running() {
		t.Fatal("Restart on running timer failed")
	}
	if Restart(tm, 0).Kind() != errcode.InvalidParameter {
		t.Fatal("zero period accepted")
	}
	// The failed Start leaves the timer stopped, not half-configured.
	if tm.Running() {
		t.Fatal("timer left running after rejected period")
	}
}
