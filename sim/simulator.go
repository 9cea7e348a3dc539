// Package sim drives randomized allocate/deallocate workloads against the
// placement policies in memory/alloc and aggregates their metrics.
//
// A Simulation is a pure, single-threaded state machine: every call to Step
// issues exactly one request. Run and RunAll wrap it for whole runs.
package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/joshuapare/memsim/internal/logger"
	"github.com/joshuapare/memsim/memory"
	"github.com/joshuapare/memsim/memory/alloc"
	"github.com/joshuapare/memsim/memory/owners"
)

// StepKind classifies the request issued by a step.
type StepKind uint8

const (
	StepAllocate StepKind = iota + 1
	StepDeallocate
)

func (k StepKind) String() string {
	switch k {
	case StepAllocate:
		return "allocate"
	case StepDeallocate:
		return "deallocate"
	}
	return fmt.Sprintf("StepKind(%d)", uint8(k))
}

// Step describes one request and its outcome.
type Step struct {
	Kind  StepKind
	PID   memory.PID // Drawn pid for allocations, target pid for deallocations
	Units int        // Requested size (allocations only)
	Cost  int        // Scan cost (successful allocations) or units freed
	OK    bool       // Allocation placed, or deallocation freed units
}

// Simulation owns the pool, allocator and owner registry of one policy run.
type Simulation struct {
	cfg    Config
	rng    *rand.Rand
	pool   *memory.Pool
	alloc  alloc.Allocator
	owners *owners.Registry
	result Result
}

// New builds a simulation over a fresh pool for policy. The rng is shared with
// the caller; successive runs keep drawing from the same stream.
func New(cfg Config, policy alloc.Policy, rng *rand.Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrBadConfig)
	}
	pool, err := memory.New(cfg.PoolUnits, cfg.BlockSize)
	if err != nil {
		return nil, err
	}
	a, err := alloc.New(policy, pool)
	if err != nil {
		return nil, err
	}
	return &Simulation{
		cfg:    cfg,
		rng:    rng,
		pool:   pool,
		alloc:  a,
		owners: owners.New(),
		result: Result{Policy: policy, Title: policy.Title()},
	}, nil
}

// Pool exposes the simulated pool for inspection.
func (s *Simulation) Pool() *memory.Pool { return s.pool }

// Owners exposes the owner registry for inspection.
func (s *Simulation) Owners() *owners.Registry { return s.owners }

// Step issues one request: a deallocation with probability 1/DeallocOneIn,
// otherwise an allocation of a random size.
func (s *Simulation) Step() Step {
	s.result.Requests++
	pid := memory.PID(s.rng.Intn(s.cfg.PIDRange))

	if s.rng.Intn(s.cfg.DeallocOneIn) == 0 {
		return s.deallocate()
	}

	units := s.cfg.MinRequest + s.rng.Intn(s.cfg.MaxRequest-s.cfg.MinRequest+1)
	st := Step{Kind: StepAllocate, PID: pid, Units: units}
	cost, err := s.alloc.Allocate(pid, units)
	if err != nil {
		s.result.Denials++
		logger.Debug("allocation denied", "policy", s.result.Policy, "pid", pid, "units", units, "err", err)
		return st
	}
	s.owners.Add(pid)
	s.result.Allocations++
	s.result.Traversed += int64(cost)
	st.Cost, st.OK = cost, true
	logger.Debug("allocated", "policy", s.result.Policy, "pid", pid, "units", units, "scanned", cost)
	return st
}

// deallocate picks a registered process at a random cyclic offset and frees it.
func (s *Simulation) deallocate() Step {
	s.result.Deallocations++
	st := Step{Kind: StepDeallocate}

	offset := s.rng.Intn(s.cfg.MaxCyclicOffset + 1)
	pid, ok := s.owners.Take(offset)
	if !ok {
		s.result.DeallocMisses++
		return st
	}
	st.PID = pid

	freed, err := s.alloc.Deallocate(pid)
	if err != nil {
		if !errors.Is(err, alloc.ErrNotOwned) {
			logger.Warn("deallocation failed", "policy", s.result.Policy, "pid", pid, "err", err)
		}
		s.result.DeallocMisses++
		return st
	}
	s.result.UnitsFreed += int64(freed)
	st.Cost, st.OK = freed, true
	logger.Debug("deallocated", "policy", s.result.Policy, "pid", pid, "units", freed)
	return st
}

// Result snapshots the metrics so far, including the current pool state.
func (s *Simulation) Result() Result {
	r := s.result
	r.Pool = s.pool.Stats()
	r.PoolMap = s.pool.String()
	return r
}

// Run performs cfg.Requests steps of policy against a fresh pool.
func Run(cfg Config, policy alloc.Policy, rng *rand.Rand) (Result, error) {
	s, err := New(cfg, policy, rng)
	if err != nil {
		return Result{}, err
	}
	logger.Info("run started", "policy", policy, "requests", cfg.Requests, "units", cfg.PoolUnits)
	for range cfg.Requests {
		s.Step()
	}
	r := s.Result()
	logger.Info("run finished",
		"policy", policy,
		"allocations", r.Allocations,
		"denials", r.Denials,
		"deallocations", r.Deallocations,
		"free_capacity", r.Pool.FreeCapacity,
	)
	return r, nil
}

// RunAll runs each policy in turn, each against its own pool, sharing rng.
// With no policies it runs every policy in report order.
func RunAll(cfg Config, rng *rand.Rand, policies ...alloc.Policy) ([]Result, error) {
	if len(policies) == 0 {
		policies = alloc.Policies()
	}
	results := make([]Result, 0, len(policies))
	for _, p := range policies {
		r, err := Run(cfg, p, rng)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Title(), err)
		}
		results = append(results, r)
	}
	return results, nil
}
