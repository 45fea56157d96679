package catalog

import (
	"time"

	"renoplan/internal/domain"
)

// Task phase labels used by the template and the add-task form. The last
// two are residual buckets claimed by the terminal phase.
const (
	StageSafety      = "Safety"
	StagePermits     = "Permits"
	StageRoughIn     = "Rough-in"
	StageFinish11832 = "Finish 11832"
	StageFinish11834 = "Finish 11834"
	StageCompletion  = "Completion"
	StageCustom      = "Custom"
)

// StageLabels lists the selectable phase labels in form order.
var StageLabels = []string{
	StageSafety,
	StagePermits,
	StageRoughIn,
	StageFinish11832,
	StageFinish11834,
	StageCompletion,
	StageCustom,
}

// ProjectName is the fixed label written into export documents.
const ProjectName = "Duplex Renovation Project"

// Financial parameters for the cash-flow recovery summary.
const (
	MonthlyCarryingCosts float64 = 4854.17
	MainFloorIncome      float64 = 3500 // both main floors rented
	FullRentalIncome     float64 = 5700 // all four units
	PostRefiPayment      float64 = 3200 // carrying costs after refinance
)

// Phases returns the five project phases in order. Deadlines, budgets and
// priorities are fixed plan data, not derived from tasks.
func Phases() []domain.Phase {
	return []domain.Phase{
		{
			Key:         "phase1",
			Name:        "Main Floor Habitability (Sep 15 - Oct 1)",
			Deadline:    time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC),
			Budget:      29000,
			Priority:    domain.PriorityCritical,
			Description: "Get main floors rented ASAP - $1,354/month savings!",
			Stages:      []string{StageSafety},
		},
		{
			Key:         "phase2",
			Name:        "Suite Permits & Design (Oct 1 - Nov 1)",
			Deadline:    time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
			Budget:      7500,
			Priority:    domain.PriorityCritical,
			Description: "Fast-track permits for simultaneous construction",
			Stages:      []string{StagePermits},
		},
		{
			Key:         "phase3",
			Name:        "Simultaneous Rough-In (Both Suites) (Nov 1 - Dec 20)",
			Deadline:    time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC),
			Budget:      32000,
			Priority:    domain.PriorityHigh,
			Description: "Maximum efficiency - both suites together",
			Stages:      []string{StageRoughIn},
		},
		{
			Key:         "phase4",
			Name:        "Suite 11832 Finish (Dec 20 - Jan 20)",
			Deadline:    time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC),
			Budget:      17700,
			Priority:    domain.PriorityMedium,
			Description: "Complete first suite for immediate rental",
			Stages:      []string{StageFinish11832},
		},
		{
			Key:         "phase5",
			Name:        "Suite 11834 Finish (Jan 20 - Jan 31)",
			Deadline:    time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC),
			Budget:      15800,
			Priority:    domain.PriorityMedium,
			Description: "Complete second suite to maximize income",
			Stages:      []string{StageFinish11834, StageCompletion, StageCustom},
		},
	}
}

// Template returns the 47 catalogue tasks in execution order.
func Template() []domain.Task {
	return []domain.Task{
		// Immediate safety & habitability (Sep 15 - Oct 1)
		{ID: "struct_engineer_consult", Name: "Emergency structural engineer consultation", Phase: StageSafety, Critical: true, Trades: []string{"Engineer"}, Cost: 2500, Days: 2, IsTemplate: true},
		{ID: "emergency_permits", Name: "File emergency building permits", Phase: StageSafety, Critical: true, Trades: []string{"Admin"}, Cost: 400, Days: 1, IsTemplate: true},
		{ID: "sump_pump_repair", Name: "Repair sump pump systems", Phase: StageSafety, Critical: true, Trades: []string{"Plumber"}, Cost: 2000, Days: 2, IsTemplate: true},
		{ID: "plumbing_safety_fix", Name: "Install missing caps, fix hazards", Phase: StageSafety, Critical: true, Trades: []string{"Plumber"}, Cost: 800, Days: 1, IsTemplate: true},
		{ID: "electrical_safety_fix", Name: "Fix wiring hazards, label panels", Phase: StageSafety, Critical: true, Trades: []string{"Electrician"}, Cost: 1200, Days: 2, IsTemplate: true},
		{ID: "appliance_order", Name: "Order appliances for main floors", Phase: StageSafety, Critical: true, Trades: []string{"Admin"}, Cost: 4500, Days: 1, IsTemplate: true},

		// Main floor finishing
		{ID: "lvp_11832", Name: "Install LVP flooring 11832 main", Phase: StageSafety, Critical: true, Trades: []string{"Flooring"}, Cost: 2800, Days: 2, IsTemplate: true},
		{ID: "carpet_11834", Name: "Install carpet 11834 main", Phase: StageSafety, Critical: true, Trades: []string{"Flooring"}, Cost: 1500, Days: 1, IsTemplate: true},
		{ID: "appliance_install", Name: "Install main floor appliances", Phase: StageSafety, Critical: true, Trades: []string{"Appliance Tech"}, Cost: 800, Days: 2, IsTemplate: true},
		{ID: "attic_insulation", Name: "Install attic insulation", Phase: StageSafety, Critical: true, Trades: []string{"Insulation"}, Cost: 4000, Days: 2, IsTemplate: true},
		{ID: "main_floor_clean", Name: "Professional cleaning", Phase: StageSafety, Critical: true, Trades: []string{"Cleaner"}, Cost: 800, Days: 1, IsTemplate: true},
		{ID: "safety_inspection", Name: "Safety inspection & occupancy", Phase: StageSafety, Critical: true, Trades: []string{"Inspector"}, Cost: 200, Days: 1, IsTemplate: true},

		// Suite planning & permits (Oct 1 - Nov 1)
		{ID: "architect_rush", Name: "Rush architect plans (both suites)", Phase: StagePermits, Critical: true, Trades: []string{"Architect"}, Cost: 4500, Days: 10, IsTemplate: true},
		{ID: "structural_engineer_suite", Name: "Structural engineer for egress", Phase: StagePermits, Critical: true, Trades: []string{"Engineer"}, Cost: 1500, Days: 5, IsTemplate: true},
		{ID: "development_permits", Name: "Submit development permits", Phase: StagePermits, Critical: true, Trades: []string{"Admin"}, Cost: 500, Days: 2, IsTemplate: true},
		{ID: "building_permits_suite", Name: "Submit building permits", Phase: StagePermits, Critical: true, Trades: []string{"Admin"}, Cost: 1000, Days: 7, IsTemplate: true},
		{ID: "material_bulk_order", Name: "Bulk order all suite materials", Phase: StagePermits, Critical: false, Trades: []string{"Admin"}, Cost: 0, Days: 3, IsTemplate: true},

		// Rough-in phase (Nov 1 - Dec 20), both suites simultaneously
		{ID: "egress_windows_cut", Name: "Cut egress windows (both suites)", Phase: StageRoughIn, Critical: true, Trades: []string{"Concrete", "Glazier"}, Cost: 9000, Days: 5, IsTemplate: true},
		{ID: "structural_framing", Name: "Frame walls/ceilings (both suites)", Phase: StageRoughIn, Critical: true, Trades: []string{"Framer"}, Cost: 7000, Days: 8, IsTemplate: true},
		{ID: "electrical_rough_both", Name: "Electrical rough-in (separate panels)", Phase: StageRoughIn, Critical: true, Trades: []string{"Electrician"}, Cost: 6000, Days: 6, IsTemplate: true},
		{ID: "plumbing_rough_both", Name: "Plumbing rough-in (both suites)", Phase: StageRoughIn, Critical: true, Trades: []string{"Plumber"}, Cost: 7000, Days: 8, IsTemplate: true},
		{ID: "hvac_rough_both", Name: "HVAC systems (both suites)", Phase: StageRoughIn, Critical: true, Trades: []string{"HVAC"}, Cost: 2500, Days: 4, IsTemplate: true},
		{ID: "rough_inspections", Name: "All rough-in inspections", Phase: StageRoughIn, Critical: true, Trades: []string{"Inspector"}, Cost: 500, Days: 2, IsTemplate: true},

		// Suite 11832 finishing (Dec 20 - Jan 20)
		{ID: "insulation_11832", Name: "Insulation/vapor barrier 11832", Phase: StageFinish11832, Critical: false, Trades: []string{"Insulation"}, Cost: 1800, Days: 3, IsTemplate: true},
		{ID: "drywall_11832", Name: "Drywall installation 11832", Phase: StageFinish11832, Critical: false, Trades: []string{"Drywall"}, Cost: 3500, Days: 8, IsTemplate: true},
		{ID: "flooring_11832_suite", Name: "LVP flooring 11832 suite", Phase: StageFinish11832, Critical: false, Trades: []string{"Flooring"}, Cost: 2200, Days: 3, IsTemplate: true},
		{ID: "kitchen_cabinets_11832", Name: "Kitchen cabinets 11832", Phase: StageFinish11832, Critical: false, Trades: []string{"Cabinet"}, Cost: 3000, Days: 3, IsTemplate: true},
		{ID: "countertops_11832", Name: "Countertops 11832", Phase: StageFinish11832, Critical: false, Trades: []string{"Countertop"}, Cost: 1000, Days: 2, IsTemplate: true},
		{ID: "bathroom_11832", Name: "Bathroom completion 11832", Phase: StageFinish11832, Critical: false, Trades: []string{"Plumber", "Tiler"}, Cost: 2500, Days: 5, IsTemplate: true},
		{ID: "appliances_11832_suite", Name: "Suite appliances 11832", Phase: StageFinish11832, Critical: false, Trades: []string{"Appliance Tech"}, Cost: 2000, Days: 1, IsTemplate: true},
		{ID: "electrical_final_11832", Name: "Final electrical 11832", Phase: StageFinish11832, Critical: false, Trades: []string{"Electrician"}, Cost: 500, Days: 2, IsTemplate: true},
		{ID: "paint_11832", Name: "Paint & trim 11832", Phase: StageFinish11832, Critical: false, Trades: []string{"Painter"}, Cost: 1200, Days: 3, IsTemplate: true},

		// Suite 11834 finishing (Jan 20 - Jan 31)
		{ID: "insulation_11834", Name: "Insulation/vapor barrier 11834", Phase: StageFinish11834, Critical: false, Trades: []string{"Insulation"}, Cost: 1500, Days: 2, IsTemplate: true},
		{ID: "drywall_11834", Name: "Drywall installation 11834", Phase: StageFinish11834, Critical: false, Trades: []string{"Drywall"}, Cost: 3000, Days: 6, IsTemplate: true},
		{ID: "flooring_11834_suite", Name: "LVP flooring 11834 suite", Phase: StageFinish11834, Critical: false, Trades: []string{"Flooring"}, Cost: 2000, Days: 2, IsTemplate: true},
		{ID: "kitchen_11834", Name: "Kitchen installation 11834", Phase: StageFinish11834, Critical: false, Trades: []string{"Cabinet", "Countertop"}, Cost: 3500, Days: 3, IsTemplate: true},
		{ID: "bathroom_11834", Name: "Bathroom completion 11834", Phase: StageFinish11834, Critical: false, Trades: []string{"Plumber", "Tiler"}, Cost: 2500, Days: 4, IsTemplate: true},
		{ID: "appliances_11834_suite", Name: "Suite appliances 11834", Phase: StageFinish11834, Critical: false, Trades: []string{"Appliance Tech"}, Cost: 1800, Days: 1, IsTemplate: true},
		{ID: "electrical_final_11834", Name: "Final electrical 11834", Phase: StageFinish11834, Critical: false, Trades: []string{"Electrician"}, Cost: 500, Days: 2, IsTemplate: true},
		{ID: "paint_11834", Name: "Paint & trim 11834", Phase: StageFinish11834, Critical: false, Trades: []string{"Painter"}, Cost: 1000, Days: 2, IsTemplate: true},

		// Final completion
		{ID: "final_inspections_both", Name: "Final inspections both suites", Phase: StageCompletion, Critical: true, Trades: []string{"Inspector"}, Cost: 500, Days: 1, IsTemplate: true},
		{ID: "exterior_touchups", Name: "Exterior repairs & cleanup", Phase: StageCompletion, Critical: false, Trades: []string{"General"}, Cost: 2000, Days: 3, IsTemplate: true},
		{ID: "landscaping", Name: "Landscaping & curb appeal", Phase: StageCompletion, Critical: false, Trades: []string{"Landscaper"}, Cost: 1500, Days: 2, IsTemplate: true},
		{ID: "final_cleaning", Name: "Final professional cleaning", Phase: StageCompletion, Critical: false, Trades: []string{"Cleaner"}, Cost: 600, Days: 1, IsTemplate: true},
		{ID: "window_coverings_both", Name: "Install window coverings (both suites)", Phase: StageCompletion, Critical: false, Trades: []string{"General"}, Cost: 800, Days: 1, IsTemplate: true},
		{ID: "smoke_co_detectors", Name: "Install smoke/CO detectors & final safety check", Phase: StageCompletion, Critical: true, Trades: []string{"Electrician"}, Cost: 400, Days: 1, IsTemplate: true},
		{ID: "rental_listing_prep", Name: "Photograph & list suites for rent", Phase: StageCompletion, Critical: false, Trades: []string{"Admin"}, Cost: 300, Days: 1, IsTemplate: true},
	}
}

// GanttSpans returns the static timeline bars. The window is 137 days from
// project kickoff (Sep 15) to suite completion (Jan 31).
func GanttSpans() []domain.GanttSpan {
	return []domain.GanttSpan{
		{Name: "Safety & Main Floors", Start: 0, Duration: 16},
		{Name: "Permits & Planning", Start: 16, Duration: 30},
		{Name: "Rough-in (Both)", Start: 46, Duration: 49},
		{Name: "Finish 11832", Start: 95, Duration: 31},
		{Name: "Finish 11834", Start: 126, Duration: 11},
	}
}

// GanttWindowDays is the total span of the gantt chart in days.
const GanttWindowDays = 137

// Milestones returns the cash-flow recovery timeline.
func Milestones() []domain.Milestone {
	return []domain.Milestone{
		{Date: "Oct 1", Event: "Main floors rented", Income: 3500, Loss: -1354},
		{Date: "Jan 20", Event: "First suite complete", Income: 4600, Loss: -254},
		{Date: "Jan 31", Event: "Both suites complete", Income: 5700, Loss: 846},
		{Date: "Mar 1", Event: "Refinance complete", Income: 5700, Surplus: 2500},
	}
}
