package ecs

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) {
	f(w)
}

// Condition gates a system; the system runs only when every condition holds.
type Condition func(w *World) bool

type Stage int

const (
	// Startup systems run once, before the first Update stage.
	Startup Stage = iota
	// PreUpdate runs input sampling and state transitions.
	PreUpdate
	Update
	PostUpdate
	stageCount
)

type scheduled struct {
	system     System
	conditions []Condition
}

type Scheduler struct {
	stages  [stageCount][]scheduled
	started bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers a system in a stage. Systems in a stage run in registration order.
func (s *Scheduler) Add(stage Stage, system System, conditions ...Condition) {
	if s == nil || system == nil || stage < 0 || stage >= stageCount {
		return
	}
	s.stages[stage] = append(s.stages[stage], scheduled{system: system, conditions: conditions})
}

// Update runs startup systems on the first call, then every stage, then flushes events.
func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	if !s.started {
		s.runStage(w, Startup)
		s.started = true
	}
	for stage := PreUpdate; stage < stageCount; stage++ {
		s.runStage(w, stage)
	}
	FlushEvents(w)
}

func (s *Scheduler) runStage(w *World, stage Stage) {
	for _, sc := range s.stages[stage] {
		if !allow(w, sc.conditions) {
			continue
		}
		sc.system.Update(w)
	}
}

func allow(w *World, conditions []Condition) bool {
	for _, c := range conditions {
		if c != nil && !c(w) {
			return false
		}
	}
	return true
}

// Systems returns the systems of one stage in run order.
func (s *Scheduler) Systems(stage Stage) []System {
	if s == nil || stage < 0 || stage >= stageCount {
		return nil
	}
	systems := make([]System, 0, len(s.stages[stage]))
	for _, sc := range s.stages[stage] {
		systems = append(systems, sc.system)
	}
	return systems
}

// Not inverts a condition.
func Not(c Condition) Condition {
	return func(w *World) bool {
		return c == nil || !c(w)
	}
}
