package martian

import (
	"errors"
	"net"
	"strconv"
	"sync"

	"github.com/indigo-web/martian/internal/server/http"
	"github.com/indigo-web/martian/internal/server/tcp"
	"github.com/indigo-web/martian/router"
	"github.com/indigo-web/martian/router/inbuilt"
	"github.com/indigo-web/martian/settings"
)

type ListenerConstructor func(network, addr string) (net.Listener, error)

// DefaultPort is the port Default listens on.
const DefaultPort = 8080

// App glues the router to the network: it accepts connections, reads a single request
// off each, and writes the router's response back.
type App struct {
	host        string
	port        uint16
	settings    settings.Settings
	constructor ListenerConstructor
	hooks       hooks

	mu     sync.Mutex
	server *tcp.Server
}

// Default returns an App listening on all interfaces on port 8080.
func Default() *App {
	return New(DefaultPort)
}

// New returns a new App listening on all interfaces on the port. Port 0 picks a random
// free one, see Addr.
func New(port uint16) *App {
	return &App{
		port:        port,
		settings:    settings.Default(),
		constructor: net.Listen,
	}
}

// Host restricts the interface to listen on, e.g. localhost.
func (a *App) Host(host string) *App {
	a.host = host
	return a
}

// Tune replaces default settings. Zero values are filled with defaults.
func (a *App) Tune(s settings.Settings) *App {
	a.settings = settings.Fill(s)
	return a
}

// Listener replaces net.Listen with a custom listener constructor.
func (a *App) Listener(constructor ListenerConstructor) *App {
	a.constructor = constructor
	return a
}

// NotifyOnStart calls the callback at the moment the server is listening.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback at the moment the server is down. It's guaranteed that
// at that moment no connections are being served anymore.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

func (a *App) Port() uint16 {
	return a.port
}

// Addr returns the address the app is listening on, or nil if it isn't serving.
func (a *App) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server == nil {
		return nil
	}

	return a.server.Addr()
}

// Serve starts the web-application and blocks until it is stopped. If nil is passed instead
// of a router, empty inbuilt will be used. Stopping the app via Stop results in nil error.
func (a *App) Serve(r router.Router) error {
	if r == nil {
		r = inbuilt.New()
	}

	if err := r.OnStart(); err != nil {
		return err
	}

	sock, err := a.constructor("tcp", net.JoinHostPort(a.host, strconv.Itoa(int(a.port))))
	if err != nil {
		return err
	}

	httpServer := http.NewServer(r, a.settings)
	server := tcp.NewServer(sock, httpServer.Serve)

	a.mu.Lock()
	a.server = server
	a.mu.Unlock()

	callIfNotNil(a.hooks.OnStart)
	err = server.Start()
	callIfNotNil(a.hooks.OnStop)

	if errors.Is(err, tcp.ErrShutdown) {
		return nil
	}

	return err
}

// Stop stops accepting new connections and closes the current ones. Serve returns
// after all the handlers are done.
func (a *App) Stop() error {
	a.mu.Lock()
	server := a.server
	a.mu.Unlock()

	if server == nil {
		return nil
	}

	return server.Stop()
}

// GracefulStop stops accepting new connections, letting the current ones be served
// till the end.
func (a *App) GracefulStop() error {
	a.mu.Lock()
	server := a.server
	a.mu.Unlock()

	if server == nil {
		return nil
	}

	return server.GracefulShutdown()
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
