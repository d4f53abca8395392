package geolocation

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"console/internal/entities"
	"console/pkg/logger"
)

const (
	watchCommand = "?WATCH={\"enable\":true,\"json\":true};\n"
	dialTimeout  = 5 * time.Second

	// gpsd fix modes: 0 unknown, 1 no fix, 2 2D, 3 3D
	minFixMode = 2
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// tpv is the gpsd time-position-velocity report.
type tpv struct {
	Class string    `json:"class"`
	Mode  int       `json:"mode"`
	Time  time.Time `json:"time"`
	Lat   float64   `json:"lat"`
	Lon   float64   `json:"lon"`
	EPX   float64   `json:"epx"`
	EPY   float64   `json:"epy"`
}

// GPSD reads positions from a gpsd daemon over its JSON socket protocol.
type GPSD struct {
	addr string
	log  handlerLogger

	mu   sync.Mutex
	last *Position
	now  func() time.Time
}

func NewGPSD(log handlerLogger, addr string) *GPSD {
	return &GPSD{
		addr: addr,
		log:  log.With(logger.NewField("component", "gpsd"), logger.NewField("addr", addr)),
		now:  time.Now,
	}
}

func (g *GPSD) Available() bool {
	return g.addr != ""
}

// CurrentPosition returns the first fix reported after connecting, or a cached
// fix younger than opts.MaxAge.
func (g *GPSD) CurrentPosition(ctx context.Context, opts Options) (Position, error) {
	if !g.Available() {
		return Position{}, ErrUnavailable
	}

	if opts.MaxAge > 0 {
		g.mu.Lock()
		last := g.last
		g.mu.Unlock()
		if last != nil && g.now().Sub(last.At) <= opts.MaxAge {
			return *last, nil
		}
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	conn, err := g.dial(ctx)
	if err != nil {
		return Position{}, err
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { _ = conn.SetReadDeadline(time.Now()) })
	defer stop()

	var pos Position
	err = g.read(conn, func(p Position) bool {
		pos = p
		return false
	})
	if !pos.At.IsZero() {
		return pos, nil
	}
	if ctx.Err() != nil {
		return Position{}, fmt.Errorf("current position: %w", ErrTimeout)
	}
	if err != nil {
		return Position{}, err
	}
	return Position{}, ErrNoFix
}

// Watch connects and streams fixes to onUpdate from a dedicated goroutine.
// When opts.Timeout elapses without any fix, onError receives ErrTimeout and
// the watch ends.
func (g *GPSD) Watch(opts Options, onUpdate func(Position), onError func(error)) (Watch, error) {
	if !g.Available() {
		return nil, ErrUnavailable
	}

	ctx, cancel := context.WithCancel(context.Background())
	conn, err := g.dial(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	w := &gpsdWatch{cancel: cancel, conn: conn}

	go func() {
		defer w.Clear()

		if opts.Timeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(opts.Timeout))
		}

		err := g.read(conn, func(p Position) bool {
			if ctx.Err() != nil {
				return false
			}
			if opts.Timeout > 0 {
				_ = conn.SetReadDeadline(time.Now().Add(opts.Timeout))
			}
			onUpdate(p)
			return true
		})
		if ctx.Err() != nil {
			return
		}

		var netErr net.Error
		if err != nil && errors.As(err, &netErr) && netErr.Timeout() {
			err = ErrTimeout
		}
		if err == nil {
			err = fmt.Errorf("gpsd stream closed: %w", ErrUnavailable)
		}
		onError(err)
	}()

	return w, nil
}

func (g *GPSD) dial(ctx context.Context) (net.Conn, error) {
	d := net.Dialer{Timeout: dialTimeout}
	conn, err := d.DialContext(ctx, "tcp", g.addr)
	if err != nil {
		return nil, fmt.Errorf("dial gpsd: %w", ErrUnavailable)
	}

	if _, err := conn.Write([]byte(watchCommand)); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enable gpsd watch: %w", err)
	}
	return conn, nil
}

// read decodes reports until fn returns false or the stream fails.
func (g *GPSD) read(conn net.Conn, fn func(Position) bool) error {
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var report tpv
		if err := json.Unmarshal(scanner.Bytes(), &report); err != nil {
			g.log.Debug("skip undecodable gpsd line", logger.NewField("error", err))
			continue
		}
		if report.Class != "TPV" || report.Mode < minFixMode {
			continue
		}

		pos := Position{
			Coordinate: entities.Coordinate{Lat: report.Lat, Lng: report.Lon},
			Accuracy:   max(report.EPX, report.EPY),
			At:         report.Time,
		}
		if !pos.Coordinate.Valid() {
			g.log.Warn("gpsd reported an invalid coordinate",
				logger.NewField("lat", report.Lat),
				logger.NewField("lon", report.Lon),
			)
			continue
		}
		if pos.At.IsZero() {
			pos.At = g.now()
		}

		g.mu.Lock()
		g.last = &pos
		g.mu.Unlock()

		if !fn(pos) {
			return nil
		}
	}
	return scanner.Err()
}

type gpsdWatch struct {
	once   sync.Once
	cancel context.CancelFunc
	conn   net.Conn
}

func (w *gpsdWatch) Clear() {
	w.once.Do(func() {
		w.cancel()
		_ = w.conn.Close()
	})
}
