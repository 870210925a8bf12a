package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

// newScreen opens the terminal used when rendering is enabled
var newScreen = func() (tcell.Screen, error) {
	return tcell.NewScreen()
}

// frame is a population handed from the stepper to the renderer
type frame struct {
	population model.Population
	generation int
}

// outcome is how a single sequenced run ended
type outcome struct {
	last        model.Generation
	generations int
}

// display routes frames and messages to the full screen when one is open, otherwise to out.
// Messages shown on the screen are replayed to out on close so they survive teardown.
type display struct {
	out       io.Writer
	screen    *model.ScreenRenderer
	stats     *utils.Stats
	lastFrame time.Time
	last      model.Population
	status    []string
	messages  []string
}

func newDisplay(out io.Writer, screen *model.ScreenRenderer) *display {
	return &display{out: out, screen: screen, stats: utils.NewStats(), lastFrame: time.Now()}
}

// show updates stats and presents one generation
func (d *display) show(f frame) {
	d.stats.Update(f.generation, f.population.Len(), time.Since(d.lastFrame))
	d.lastFrame = time.Now()
	d.last = f.population
	d.status = gameStatus(f.generation, f.population, d.stats)

	if d.screen == nil {
		fmt.Fprintln(d.out, strings.Join(d.status, "\n"))
		return
	}
	d.screen.Draw(f.population, append(d.status, "Press q or Esc to quit")...)
}

// message reports an event such as an ending or a restart
func (d *display) message(msg string) {
	if d.screen == nil {
		fmt.Fprintln(d.out, msg)
		return
	}
	d.messages = append(d.messages, msg)
	d.screen.Draw(d.last, append(d.status, msg)...)
}

// close tears the screen down and replays buffered messages
func (d *display) close() {
	if d.screen == nil {
		return
	}
	d.screen.Close()
	for _, msg := range d.messages {
		fmt.Fprintln(d.out, msg)
	}
}

// loadConfig reads the configuration, falling back to defaults only when the file is missing
func loadConfig(path string, out io.Writer) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if err == nil {
		return config, nil
	}
	if os.IsNotExist(errors.Cause(err)) {
		fmt.Fprintf(out, "Using default configuration (%s not found)\n", path)
		return utils.DefaultConfig(), nil
	}
	return config, err
}

// initialPopulation builds the starting population from the configuration
func initialPopulation(config utils.Config, rng *rand.Rand) (model.Population, error) {
	switch {
	case config.PatternFile != "":
		f, err := os.Open(config.PatternFile)
		if err != nil {
			return model.Population{}, errors.Wrapf(err, "[initialPopulation] failed to open pattern file: %+v", config.PatternFile)
		}
		defer f.Close()

		p, err := model.ParsePlaintext(f)
		if err != nil {
			return model.Population{}, errors.Wrapf(err, "[initialPopulation] failed to parse pattern file: %+v", config.PatternFile)
		}
		return model.Center(p)
	case config.Pattern != "":
		p, err := model.Named(config.Pattern)
		if err != nil {
			return model.Population{}, err
		}
		return model.Center(p)
	}
	return model.Seeded(rng, config.RandomDensity)
}

// stepOnce writes a single generation of start to out
func stepOnce(out io.Writer, start model.Population) error {
	next := model.NextGeneration(start)
	fmt.Fprintf(out, "Living cells after one step: %d\n", next.Len())
	var renderer model.TerminalRenderer
	return renderer.Display(out, next)
}

// gameStatus formats the status lines for one generation
func gameStatus(generation int, population model.Population, stats *utils.Stats) []string {
	density := float64(population.Len()) / float64(model.Width*model.Height) * 100
	return []string{
		fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Peak: %d",
			generation, population.Len(), density, stats.PeakPopulation),
		fmt.Sprintf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
			stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds()),
	}
}

// sleepFrame waits one frame, returning early when ctx is done
func sleepFrame(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// withDisplay runs fn against a display. When rendering is enabled the screen is opened first,
// a key watcher runs alongside fn and the screen is closed once fn returns.
func withDisplay(ctx context.Context, config utils.Config, out io.Writer, fn func(context.Context, *display) error) error {
	if !config.Render {
		return fn(ctx, newDisplay(out, nil))
	}

	screen, err := newScreen()
	if err != nil {
		return errors.Wrap(err, "[withDisplay] failed to create screen")
	}
	renderer, err := model.NewScreenRenderer(screen)
	if err != nil {
		return err
	}

	var (
		d         = newDisplay(out, renderer)
		eg, egCtx = errgroup.WithContext(ctx)
	)
	eg.Go(func() error {
		defer d.close()
		return fn(egCtx, d)
	})
	eg.Go(renderer.WaitQuit)

	if err = eg.Wait(); errors.Is(err, model.ErrQuit) {
		return nil
	}
	return err
}

// describeEnding explains why a sequenced run stopped
func describeEnding(o outcome) string {
	switch {
	case o.last.Extinct():
		return fmt.Sprintf("💀 Extinction after %d generations", o.generations)
	case o.last.Cyclic():
		return fmt.Sprintf("♻️  Cycle of period %d detected, repeating since generation %d",
			o.last.Period, o.last.Step)
	}
	return fmt.Sprintf("🏁 Reached maximum generations limit (%d)", o.generations-1)
}

// playSequence drives one Sequencer until it ends, the generation limit is hit or ctx is done
func playSequence(ctx context.Context, seq *model.Sequencer, config utils.Config, d *display) (outcome, error) {
	var o outcome
	for {
		if err := ctx.Err(); err != nil {
			return o, err
		}
		g, ok := seq.Advance()
		if !ok {
			return o, nil
		}
		o.last = g
		if g.Done {
			return o, nil
		}
		o.generations++

		d.show(frame{population: g.Population, generation: g.Step})
		if config.MaxGenerations > 0 && g.Step >= config.MaxGenerations {
			return o, nil
		}
		if err := sleepFrame(ctx, config.FrameRate); err != nil {
			return o, err
		}
	}
}

// runSequence plays sequenced runs, restarting with a fresh seeded population when enabled
func runSequence(ctx context.Context, config utils.Config, start model.Population, rng *rand.Rand, out io.Writer) error {
	err := withDisplay(ctx, config, out, func(ctx context.Context, d *display) error {
		for restarts := 0; ; restarts++ {
			o, err := playSequence(ctx, model.NewSequencer(start), config, d)
			if err != nil {
				return err
			}
			d.message(describeEnding(o))

			if !config.AutoRestart || !o.last.Done || restarts >= config.MaxRestarts {
				return nil
			}
			if start, err = model.Seeded(rng, config.RandomDensity); err != nil {
				return err
			}
			d.message(fmt.Sprintf("🔄 Restarting (%d/%d)... Living cells: %d", restarts+1, config.MaxRestarts, start.Len()))
			if err = sleepFrame(ctx, config.FrameRate); err != nil {
				return err
			}
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "[runSequence] run failed")
	}
	return nil
}

// produceFrames advances the stepper once per frame and hands each population to frames
func produceFrames(ctx context.Context, stepper *model.Stepper, start model.Population, config utils.Config, frames chan<- frame) error {
	var tick <-chan time.Time
	if config.FrameRate > 0 {
		ticker := time.NewTicker(config.FrameRate)
		defer ticker.Stop()
		tick = ticker.C
	}

	next := frame{population: start}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case frames <- next:
		}
		if config.MaxGenerations > 0 && next.generation >= config.MaxGenerations {
			return nil
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
		next = frame{population: stepper.Advance(), generation: stepper.Step()}
	}
}

// runUnbounded steps without cycle detection; computing and displaying run in separate goroutines
func runUnbounded(ctx context.Context, config utils.Config, start model.Population, out io.Writer) error {
	var generations int
	err := withDisplay(ctx, config, out, func(ctx context.Context, d *display) error {
		var (
			eg, egCtx = errgroup.WithContext(ctx)
			frames    = make(chan frame, 1)
		)

		eg.Go(func() error {
			defer close(frames)
			return produceFrames(egCtx, model.NewStepper(start), start, config, frames)
		})

		eg.Go(func() error {
			for f := range frames {
				d.show(f)
				generations = f.generation
			}
			return nil
		})

		return eg.Wait()
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "[runUnbounded] run failed")
	}
	fmt.Fprintf(out, "Final stats: %d generations\n", generations)
	return nil
}
