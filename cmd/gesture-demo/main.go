// Package main is a terminal playground for the gesture controller:
// a draggable box wired to the built-in recognizers, with live tuning
// reload from a profile file.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gesturekit/config"
	"github.com/dshills/gesturekit/config/loader"
	"github.com/dshills/gesturekit/controller"
	"github.com/dshills/gesturekit/event"
	"github.com/dshills/gesturekit/recognizer"
	luarec "github.com/dshills/gesturekit/recognizer/lua"
	"github.com/dshills/gesturekit/terminal"
)

var (
	version = "dev"
)

func main() {
	os.Exit(run())
}

type options struct {
	profilePath string
	scriptPath  string
}

func run() int {
	opts := parseFlags()

	tuning, err := loadTuning(opts.profilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading profile: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing screen: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()

	demo, err := newDemo(screen, tuning, opts.scriptPath)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer demo.close()

	if opts.profilePath != "" {
		w, err := config.NewWatcher(opts.profilePath, func() {
			if t, err := loadTuning(opts.profilePath); err == nil {
				demo.retune(t)
				screen.PostEvent(tcell.NewEventInterrupt("retuned"))
			}
		})
		if err == nil {
			defer w.Close()
		}
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	return demo.loop()
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.profilePath, "profile", "", "Path to a tuning profile (.toml, .json, .yaml)")
	flag.StringVar(&opts.profilePath, "p", "", "Path to a tuning profile (shorthand)")
	flag.StringVar(&opts.scriptPath, "script", "", "Path to a Lua recognizer script")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("gesture-demo %s\n", version)
		os.Exit(0)
	}
	return opts
}

// loadTuning merges the profile file (if any) with GESTUREKIT_*
// environment overrides on top of the defaults.
func loadTuning(path string) (config.Tuning, error) {
	tuning := config.DefaultTuning()

	loaders := []loader.Loader{}
	if path != "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml":
			loaders = append(loaders, loader.NewTOMLLoader(path))
		case ".json":
			loaders = append(loaders, loader.NewJSONLoader(path))
		case ".yaml", ".yml":
			loaders = append(loaders, loader.NewYAMLLoader(path))
		default:
			return tuning, fmt.Errorf("unsupported profile format %q", filepath.Ext(path))
		}
	}
	loaders = append(loaders, loader.NewEnvLoader(""))

	profile, err := loader.LoadAll(loaders...)
	if err != nil {
		return tuning, err
	}
	if err := tuning.Apply(profile); err != nil {
		return tuning, err
	}
	return tuning, nil
}

// demo owns the screen, the surfaces, and the controller lifecycle.
type demo struct {
	screen     tcell.Screen
	box        *terminal.Surface
	window     *terminal.Surface
	router     *terminal.Router
	translator *terminal.Translator
	script     *luarec.Recognizer

	ctrl    *controller.Controller
	release func()

	origin event.Position
	status string
}

func newDemo(screen tcell.Screen, tuning config.Tuning, scriptPath string) (*demo, error) {
	d := &demo{
		screen:     screen,
		box:        terminal.NewSurface(terminal.Rect{X: 10, Y: 5, Width: 20, Height: 7}),
		window:     terminal.NewWindow(),
		translator: terminal.NewTranslator(),
		origin:     event.Position{X: 10, Y: 5},
	}
	d.router = terminal.NewRouter(d.window, d.box)

	if scriptPath != "" {
		script, err := luarec.NewFromFile(scriptPath)
		if err != nil {
			return nil, err
		}
		d.script = script
	}

	if err := d.rebind(tuning); err != nil {
		return nil, err
	}
	return d, nil
}

// rebind tears down the current controller and builds one with the
// given tuning. Gesture state does not survive a retune.
func (d *demo) rebind(tuning config.Tuning) error {
	if d.release != nil {
		d.release()
		d.release = nil
	}

	recs := []recognizer.Recognizer{
		recognizer.NewDrag(tuning.Drag, d.onDrag),
		recognizer.NewClick(tuning.Click, d.onClick),
		recognizer.NewWheel(tuning.Wheel, d.onWheel),
		recognizer.NewPinch(tuning.Pinch, d.onPinch),
	}
	if d.script != nil {
		recs = append(recs, d.script)
	}

	cfg := config.Config{
		Target: d.box,
		Window: d.window,
		Tuning: tuning,
	}
	d.ctrl = controller.New(cfg, recs...)

	release, err := d.ctrl.Effect()
	if err != nil {
		return err
	}
	d.release = release
	return nil
}

func (d *demo) retune(tuning config.Tuning) {
	if err := d.rebind(tuning); err != nil {
		d.status = fmt.Sprintf("retune failed: %v", err)
		return
	}
	d.status = "profile reloaded"
}

func (d *demo) close() {
	if d.release != nil {
		d.release()
	}
	if d.script != nil {
		d.script.Close()
	}
}

func (d *demo) loop() int {
	for {
		d.draw()

		switch ev := d.screen.PollEvent().(type) {
		case nil:
			return 0

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return 0
			}

		case *tcell.EventResize:
			d.screen.Sync()

		case *tcell.EventMouse:
			d.router.RouteAll(d.translator.Translate(ev))

		case *tcell.EventInterrupt:
			if ev.Data() == nil {
				return 0
			}
		}
	}
}

func (d *demo) onDrag(st *recognizer.SlotState, ev event.Event) {
	if st.Active {
		if !st.Intentional {
			return
		}
		bounds := d.box.Bounds()
		bounds.X = d.origin.X + st.Offset.X
		bounds.Y = d.origin.Y + st.Offset.Y
		d.box.SetBounds(bounds)
		d.status = fmt.Sprintf("dragging offset=(%d,%d)", st.Offset.X, st.Offset.Y)
		return
	}

	d.origin.X += st.Offset.X
	d.origin.Y += st.Offset.Y
	d.status = "drag ended"
}

func (d *demo) onClick(st *recognizer.SlotState, _ event.Event) {
	switch st.Count {
	case 2:
		d.status = "double click"
	case 3:
		d.status = "triple click"
	default:
		d.status = "click"
	}
}

func (d *demo) onWheel(st *recognizer.SlotState, _ event.Event) {
	if st.Active {
		d.status = fmt.Sprintf("wheel offset=(%d,%d)", st.Offset.X, st.Offset.Y)
	} else {
		d.status = "wheel ended"
	}
}

func (d *demo) onPinch(st *recognizer.SlotState, _ event.Event) {
	if st.Active {
		d.status = fmt.Sprintf("zoom scale=%.2f", st.Scale)
	}
}

func (d *demo) draw() {
	d.screen.Clear()

	boxStyle := tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorWhite)
	b := d.box.Bounds()
	for y := b.Y; y < b.Y+b.Height; y++ {
		for x := b.X; x < b.X+b.Width; x++ {
			d.screen.SetContent(x, y, ' ', nil, boxStyle)
		}
	}
	drawText(d.screen, b.X+2, b.Y+b.Height/2, boxStyle, "drag me")

	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	_, h := d.screen.Size()
	drawText(d.screen, 0, h-1, statusStyle, d.status)
	drawText(d.screen, 0, 0, tcell.StyleDefault, "esc/q to quit · ctrl+wheel to zoom")

	d.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}
