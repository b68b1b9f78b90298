package extract

import (
	"errors"
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

// ErrNoFrame is returned by Frame before the grab loop has captured from
// both cameras.
var ErrNoFrame = errors.New("extract: no frame captured yet")

const (
	frameWidth  = 640
	frameHeight = 480
)

// DoubleCam reads from the two rig cameras (one above, one below the cube)
// and serves the latest pair of frames concatenated side by side, which is
// the frame layout the rects file is calibrated against.
//
// Capture runs on a background goroutine between Start and Stop so that
// Frame always reflects the current cube, not a frame buffered by the
// driver.
type DoubleCam struct {
	up   *gocv.VideoCapture
	down *gocv.VideoCapture

	mu      sync.Mutex
	upFrame gocv.Mat
	dnFrame gocv.Mat
	fresh   bool

	stop chan struct{}
	done chan struct{}
}

// OpenDoubleCam opens the two capture devices at the rig resolution.
func OpenDoubleCam(upID, downID int) (*DoubleCam, error) {
	up, err := gocv.OpenVideoCapture(upID)
	if err != nil {
		return nil, fmt.Errorf("extract: open camera %d: %w", upID, err)
	}
	down, err := gocv.OpenVideoCapture(downID)
	if err != nil {
		up.Close()
		return nil, fmt.Errorf("extract: open camera %d: %w", downID, err)
	}

	for _, cap := range []*gocv.VideoCapture{up, down} {
		cap.Set(gocv.VideoCaptureFrameWidth, frameWidth)
		cap.Set(gocv.VideoCaptureFrameHeight, frameHeight)
	}

	return &DoubleCam{
		up:      up,
		down:    down,
		upFrame: gocv.NewMat(),
		dnFrame: gocv.NewMat(),
	}, nil
}

// Start launches the background grab loop. Starting a running camera is a
// no-op.
func (d *DoubleCam) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return
	}
	d.stop = make(chan struct{})
	d.done = make(chan struct{})
	go d.loop(d.stop, d.done)
}

// Stop halts the grab loop and waits for it to exit. Stopping a stopped
// camera is a no-op.
func (d *DoubleCam) Stop() {
	d.mu.Lock()
	stop, done := d.stop, d.done
	d.stop = nil
	d.done = nil
	d.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (d *DoubleCam) loop(stop, done chan struct{}) {
	defer close(done)
	upBuf := gocv.NewMat()
	dnBuf := gocv.NewMat()
	defer upBuf.Close()
	defer dnBuf.Close()

	for {
		select {
		case <-stop:
			return
		default:
		}

		if !d.up.Read(&upBuf) || !d.down.Read(&dnBuf) {
			continue
		}

		d.mu.Lock()
		upBuf.CopyTo(&d.upFrame)
		dnBuf.CopyTo(&d.dnFrame)
		d.fresh = true
		d.mu.Unlock()
	}
}

// Frame returns the latest up and down frames concatenated horizontally.
// The caller owns the returned Mat and must Close it.
func (d *DoubleCam) Frame() (gocv.Mat, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.fresh {
		return gocv.Mat{}, ErrNoFrame
	}

	out := gocv.NewMat()
	gocv.Hconcat(d.upFrame, d.dnFrame, &out)
	return out, nil
}

// Running reports whether the grab loop is active.
func (d *DoubleCam) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stop != nil
}

// Close stops the grab loop and releases both devices.
func (d *DoubleCam) Close() error {
	d.Stop()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.upFrame.Close()
	d.dnFrame.Close()
	err1 := d.up.Close()
	err2 := d.down.Close()
	if err1 != nil {
		return fmt.Errorf("extract: close camera: %w", err1)
	}
	if err2 != nil {
		return fmt.Errorf("extract: close camera: %w", err2)
	}
	return nil
}

// SaveFrame writes the current concatenated frame to a PNG or JPEG file
// picked by extension.
func (d *DoubleCam) SaveFrame(path string) error {
	frame, err := d.Frame()
	if err != nil {
		return err
	}
	defer frame.Close()

	if ok := gocv.IMWrite(path, frame); !ok {
		return fmt.Errorf("extract: write frame to %s failed", path)
	}
	return nil
}
