// Package shell implements the numbered-menu console over a station service.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-stations/pkg/registry"
	"github.com/dd0wney/cluso-stations/pkg/service"
)

// Menu choices.
const (
	ChoiceExit = iota
	ChoiceCreateStation
	ChoiceCreateConnection
	ChoicePrintConnections
	ChoiceDeleteStation
	ChoiceDeleteConnection
	ChoicePrintStations
	ChoiceActivity
	ChoiceStatistics
	ChoiceFailures
)

const menu = `Please select an option
 1) Create station
 2) Create station connection
 3) Print all station connections
 4) Delete a station
 5) Delete a station connection
 6) Print all stations
 7) Show activity log
 8) Show statistics
 9) Show failed operations
 0) Terminate program`

// activityLimit caps the activity views.
const activityLimit = 15

// errInputClosed ends the session when input runs out mid-prompt.
var errInputClosed = errors.New("input closed")

// Options controls rendering.
type Options struct {
	Color          bool
	SeparatorWidth int
}

// Shell reads menu choices from an input stream and renders results.
type Shell struct {
	svc     *service.Service
	scanner *bufio.Scanner
	out     io.Writer
	styles  styles
	sepLine string
}

// New creates a shell over svc.
func New(svc *service.Service, in io.Reader, out io.Writer, opts Options) *Shell {
	sep := ""
	if opts.SeparatorWidth > 0 {
		sep = strings.Repeat("-", opts.SeparatorWidth)
	}
	return &Shell{
		svc:     svc,
		scanner: bufio.NewScanner(in),
		out:     out,
		styles:  newStyles(out, opts.Color),
		sepLine: sep,
	}
}

// Run loops until the user picks 0 or input ends.
func (s *Shell) Run() error {
	for {
		s.println(menu)
		s.separator()

		s.print("Choice: ")
		line, ok := s.readLine()
		if !ok {
			return s.scanner.Err()
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			continue
		}
		if choice == ChoiceExit {
			return nil
		}

		if err := s.dispatch(choice); err != nil {
			if errors.Is(err, errInputClosed) {
				return s.scanner.Err()
			}
			return err
		}
	}
}

func (s *Shell) dispatch(choice int) error {
	switch choice {
	case ChoiceCreateStation:
		if err := s.createStation(); err != nil {
			return err
		}
		s.separator()

	case ChoiceCreateConnection:
		if err := s.createConnection(); err != nil {
			return err
		}
		s.separator()

	case ChoicePrintConnections:
		s.separator()
		s.println(s.renderConnections(s.svc.ListConnections()))
		s.separator()

	case ChoiceDeleteStation:
		if err := s.deleteStation(); err != nil {
			return err
		}
		s.separator()

	case ChoiceDeleteConnection:
		if err := s.deleteConnection(); err != nil {
			return err
		}
		s.separator()

	case ChoicePrintStations:
		s.separator()
		s.println(s.renderStations(s.svc.ListStations()))
		s.separator()

	case ChoiceActivity:
		s.separator()
		s.println(s.renderActivity(s.svc.RecentActivity(activityLimit), "No activity yet"))
		s.separator()

	case ChoiceFailures:
		s.separator()
		s.println(s.renderActivity(s.svc.FailedActivity(activityLimit), "No failed operations"))
		s.separator()

	case ChoiceStatistics:
		s.separator()
		s.showStatistics()
		s.separator()

	default:
		s.println("Please select a valid option.")
	}
	return nil
}

// createStation re-prompts until the name is not already taken.
func (s *Shell) createStation() error {
	var name string
	for {
		s.print("Station name: ")
		line, ok := s.readLine()
		if !ok {
			return errInputClosed
		}
		if _, found := s.svc.FindStation(line); found {
			s.println(s.styles.notice.Render("Name already exists"))
			continue
		}
		name = line
		break
	}

	res, err := s.svc.AddStation(name)
	if err != nil {
		s.println(s.styles.failure.Render(registry.Describe(err)))
		return nil
	}
	s.println(s.styles.success.Render(res.Message))
	return nil
}

func (s *Shell) createConnection() error {
	s.println("Connect which station ?")
	from, ok := s.readLine()
	if !ok {
		return errInputClosed
	}

	s.println(fmt.Sprintf("Connect %s to ...?", from))
	to, ok := s.readLine()
	if !ok {
		return errInputClosed
	}

	res, err := s.svc.AddConnection(from, to)
	if err != nil {
		s.println(s.styles.failure.Render(registry.Describe(err)))
		return nil
	}
	s.println(s.styles.success.Render(res.Message))
	return nil
}

func (s *Shell) deleteStation() error {
	index, err := s.promptIndex("Which station to delete?", func() string {
		return s.renderStations(s.svc.ListStations())
	})
	if err != nil {
		return err
	}

	res, err := s.svc.DeleteStation(index)
	if err != nil {
		s.println(s.styles.failure.Render(registry.Describe(err)))
		return nil
	}

	s.println(s.styles.deleted.Render(res.Message))
	for _, c := range res.Removed {
		s.println(s.styles.deleted.Render(
			fmt.Sprintf("Deleted connection from entry position number : %d (%s)", c.Index, c.String())))
	}
	return nil
}

func (s *Shell) deleteConnection() error {
	index, err := s.promptIndex("Which connection to delete?", func() string {
		return s.renderConnections(s.svc.ListConnections())
	})
	if err != nil {
		return err
	}

	res, err := s.svc.DeleteConnection(index)
	if err != nil {
		s.println(s.styles.failure.Render(registry.Describe(err)))
		return nil
	}
	s.println(s.styles.deleted.Render(res.Message))
	return nil
}

// promptIndex shows the slots and asks until the answer parses as an integer.
func (s *Shell) promptIndex(question string, slots func() string) (int, error) {
	for {
		s.separator()
		s.println(question)
		s.println(slots())

		line, ok := s.readLine()
		if !ok {
			return 0, errInputClosed
		}
		if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
			return n, nil
		}
	}
}

func (s *Shell) showStatistics() {
	st := s.svc.Stats()
	s.println(s.styles.header.Render("Registry"))
	s.println(fmt.Sprintf("  Stations:    %d / %d", st.Stations, st.StationCapacity))
	s.println(fmt.Sprintf("  Connections: %d / %d", st.Connections, st.ConnectionCapacity))
	s.println(fmt.Sprintf("  Session:     %s", s.svc.Session()))

	samples, err := s.svc.Samples()
	if err != nil {
		s.println(s.styles.failure.Render(fmt.Sprintf("Metrics unavailable: %v", err)))
		return
	}
	s.println(s.renderSamples(samples))
}

func (s *Shell) readLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return strings.TrimRight(s.scanner.Text(), "\r"), true
}

func (s *Shell) separator() {
	if s.sepLine != "" {
		s.println(s.sepLine)
	}
}

func (s *Shell) print(text string) {
	fmt.Fprint(s.out, text)
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}

