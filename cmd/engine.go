package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/certready/certready/internal/adaptive"
	"github.com/certready/certready/internal/competency"
	"github.com/certready/certready/internal/course"
	"github.com/certready/certready/internal/mockexam"
	"github.com/certready/certready/internal/practice"
	"github.com/certready/certready/internal/simulation"
	"github.com/certready/certready/internal/spacedrep"
	"github.com/certready/certready/internal/store"
)

// buildEngine opens the store, loads the course and wires the full
// engine. The caller closes the returned store.
func buildEngine(cmd *cobra.Command) (simulation.Engine, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return simulation.Engine{}, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return simulation.Engine{}, nil, fmt.Errorf("open store: %w", err)
	}

	coursePath, _ := cmd.Flags().GetString("course")
	if coursePath == "" {
		st.Close()
		return simulation.Engine{}, nil, fmt.Errorf("--course is required")
	}
	c, bank, err := course.Load(coursePath)
	if err != nil {
		st.Close()
		return simulation.Engine{}, nil, fmt.Errorf("load course: %w", err)
	}

	src := rand.New(rand.NewSource(seedFlag(cmd)))
	records := st.Records()
	attempts := st.Attempts()
	tracker := competency.NewTracker(records, competency.DefaultParams())
	scheduler := spacedrep.NewScheduler(st.Cards(), attempts, spacedrep.DefaultParams())
	svc := practice.NewService(attempts, st.Sessions(), tracker, scheduler, bank)

	return simulation.Engine{
		Course:    c,
		Bank:      bank,
		Tracker:   tracker,
		Selector:  adaptive.NewSelector(records, bank, src, adaptive.DefaultWindow),
		Scheduler: scheduler,
		Practice:  svc,
		Assembler: mockexam.NewAssembler(bank, attempts, svc, src, mockexam.DefaultParams()),
	}, st, nil
}

func openStore(dbPath string) (*store.Store, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// runnerParams maps the CLI flags onto the simulated learner.
func runnerParams(cmd *cobra.Command) simulation.Params {
	p := simulation.DefaultParams()
	p.UserID, _ = cmd.Flags().GetString("user")
	p.Seed = seedFlag(cmd)
	return p
}

func seedFlag(cmd *cobra.Command) int64 {
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return seed
}
