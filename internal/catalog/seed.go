package catalog

// Built-in content library. Custom decks can be added at runtime via
// LoadDeckFile; the seed is validated at init time so a broken seed fails
// loudly on startup rather than mid-session.

func init() {
	ct, err := buildCatalog(seedDecks(), seedCards(), seedLessons())
	if err != nil {
		panic("catalog seed: " + err.Error())
	}
	c = ct
}

func seedDecks() []Deck {
	return []Deck{
		{ID: "deck-scope", Title: "Scope Essentials", Discipline: DisciplineScope,
			CardIDs: []string{"card-wbs", "card-scope-creep", "card-requirements", "card-moscow"}},
		{ID: "deck-schedule", Title: "Scheduling & Planning", Discipline: DisciplineSchedule,
			CardIDs: []string{"card-critical-path", "card-gantt", "card-buffer", "card-milestones"}},
		{ID: "deck-risk", Title: "Risk Fundamentals", Discipline: DisciplineRisk,
			CardIDs: []string{"card-risk-register", "card-risk-matrix", "card-mitigation", "card-assumptions"}},
		{ID: "deck-stakeholder", Title: "Stakeholders & Communication", Discipline: DisciplineStakeholder,
			CardIDs: []string{"card-raci", "card-stakeholder-map", "card-status-report"}},
		{ID: "deck-quality", Title: "Quality & Delivery", Discipline: DisciplineQuality,
			CardIDs: []string{"card-dod", "card-retrospective", "card-acceptance"}},
	}
}

func seedCards() []Card {
	return []Card{
		{ID: "card-wbs", DeckID: "deck-scope", Title: "Work Breakdown Structure",
			Summary: "Decompose deliverables into manageable work packages.",
			Body:    "A WBS breaks the full scope of work into a hierarchy of deliverables and work packages. The 100% rule: the WBS captures all the work, and nothing outside it is in scope.",
			Keywords: []string{"wbs", "decomposition", "work package"}},
		{ID: "card-scope-creep", DeckID: "deck-scope", Title: "Scope Creep",
			Summary: "Uncontrolled growth of scope without adjusting time or budget.",
			Body:    "Scope creep happens when changes slip in without going through change control. Counter it with a clear baseline, a change process, and explicit trade-off conversations.",
			Keywords: []string{"change control", "baseline"}},
		{ID: "card-requirements", DeckID: "deck-scope", Title: "Requirements Gathering",
			Summary: "Elicit, document and confirm what the project must deliver.",
			Body:    "Good requirements are specific, testable and traceable. Interviews, workshops and prototyping surface needs that stakeholders struggle to articulate up front."},
		{ID: "card-moscow", DeckID: "deck-scope", Title: "MoSCoW Prioritization",
			Summary: "Must, Should, Could, Won't — a shared language for priority.",
			Body:    "MoSCoW forces explicit agreement on what ships. Must-haves define the minimum usable product; Won't-haves document the cut line so it cannot silently move."},
		{ID: "card-critical-path", DeckID: "deck-schedule", Title: "Critical Path",
			Summary: "The longest dependent chain of tasks sets the minimum duration.",
			Body:    "Tasks on the critical path have zero float: any slip moves the end date. Compress it by fast-tracking (overlap) or crashing (add resources), each with its own risk.",
			Keywords: []string{"float", "dependencies"}},
		{ID: "card-gantt", DeckID: "deck-schedule", Title: "Gantt Charts",
			Summary: "Bars on a timeline showing tasks, durations and dependencies.",
			Body:    "A Gantt chart communicates the plan at a glance. Keep it honest: update actuals, show dependencies, and resist the urge to plan in more detail than you can know."},
		{ID: "card-buffer", DeckID: "deck-schedule", Title: "Schedule Buffers",
			Summary: "Explicit contingency protects commitments from variance.",
			Body:    "Padding every task hides risk; pooling contingency into visible buffers keeps estimates honest and lets you manage consumption deliberately."},
		{ID: "card-milestones", DeckID: "deck-schedule", Title: "Milestones",
			Summary: "Zero-duration checkpoints marking meaningful progress.",
			Body:    "Milestones anchor communication: a date plus a binary done/not-done test. Tie them to deliverables, not effort, so slippage is visible early."},
		{ID: "card-risk-register", DeckID: "deck-risk", Title: "Risk Register",
			Summary: "One living list of risks, owners, and responses.",
			Body:    "Each entry records the risk, its probability and impact, an owner, and the planned response. A register nobody reviews is theater; walk it in every status cycle.",
			Keywords: []string{"register", "owner"}},
		{ID: "card-risk-matrix", DeckID: "deck-risk", Title: "Probability-Impact Matrix",
			Summary: "Rank risks by likelihood and consequence.",
			Body:    "A probability-impact grid sorts the register: high/high risks get active mitigation, low/low ones get accepted. Re-score as the project moves; risk is not static."},
		{ID: "card-mitigation", DeckID: "deck-risk", Title: "Risk Responses",
			Summary: "Avoid, transfer, mitigate, or accept — chosen per risk.",
			Body:    "Avoidance changes the plan so the risk cannot occur; transfer moves it (insurance, contracts); mitigation cuts probability or impact; acceptance takes it knowingly, with a contingency."},
		{ID: "card-assumptions", DeckID: "deck-risk", Title: "Assumption Log",
			Summary: "Every plan rests on assumptions; write them down.",
			Body:    "Unstated assumptions are risks in disguise. Log them, assign validation owners, and revisit: an assumption that fails silently becomes tomorrow's crisis."},
		{ID: "card-raci", DeckID: "deck-stakeholder", Title: "RACI Matrix",
			Summary: "Responsible, Accountable, Consulted, Informed — per task.",
			Body:    "A RACI chart removes ambiguity about who does what. Exactly one Accountable per deliverable; too many Consulted turns decisions into committees.",
			Keywords: []string{"raci", "accountability"}},
		{ID: "card-stakeholder-map", DeckID: "deck-stakeholder", Title: "Stakeholder Mapping",
			Summary: "Chart influence against interest to plan engagement.",
			Body:    "High-influence/high-interest stakeholders need active partnership; high-influence/low-interest ones need to be kept satisfied. The map decides where your communication time goes."},
		{ID: "card-status-report", DeckID: "deck-stakeholder", Title: "Status Reporting",
			Summary: "Audience-shaped, honest, and always on the same cadence.",
			Body:    "A good status report answers: where are we against plan, what changed, what do we need. Red/amber/green only works when red is safe to report."},
		{ID: "card-dod", DeckID: "deck-quality", Title: "Definition of Done",
			Summary: "A shared checklist that 'done' actually means done.",
			Body:    "The DoD makes quality explicit: reviewed, tested, documented, deployed. Without one, 'done' means something different to every person on the team."},
		{ID: "card-retrospective", DeckID: "deck-quality", Title: "Retrospectives",
			Summary: "Regular, blameless inspection of how the team works.",
			Body:    "Retrospectives convert experience into change: what went well, what didn't, what we try next. One followed-through improvement beats ten sticky notes."},
		{ID: "card-acceptance", DeckID: "deck-quality", Title: "Acceptance Criteria",
			Summary: "Testable conditions a deliverable must meet to be accepted.",
			Body:    "Acceptance criteria close the gap between requirement and verification. Written before the work starts, they prevent the demo-day argument about what was asked for."},
	}
}

func seedLessons() []Lesson {
	return []Lesson{
		{ID: "day-1", Day: 1, Title: "Scope Foundations", DeckID: "deck-scope", Questions: []Question{
			{ID: "d1-q1", Prompt: "What does the 100% rule of a WBS state?",
				Options: []string{
					"Every task must be 100% complete before the next starts",
					"The WBS captures all in-scope work and nothing more",
					"100% of the team must approve the WBS",
					"Each work package gets 100 hours at most",
				}, CorrectIndex: 1, XP: 10},
			{ID: "d1-q2", Prompt: "Scope creep is best prevented by…",
				Options: []string{
					"Refusing all changes after kickoff",
					"Padding every estimate by 50%",
					"A baseline plus an explicit change-control process",
					"Weekly all-hands meetings",
				}, CorrectIndex: 2, XP: 10},
			{ID: "d1-q3", Prompt: "In MoSCoW, what does documenting 'Won't have' achieve?",
				Options: []string{
					"It fixes the cut line so it cannot silently move",
					"It lists features the team dislikes",
					"It reserves work for the next fiscal year",
					"It marks features that failed testing",
				}, CorrectIndex: 0, XP: 15},
		}},
		{ID: "day-2", Day: 2, Title: "Building the Schedule", DeckID: "deck-schedule", Questions: []Question{
			{ID: "d2-q1", Prompt: "A task on the critical path has how much float?",
				Options: []string{"One day", "Zero", "Equal to its duration", "Unlimited"},
				CorrectIndex: 1, XP: 10},
			{ID: "d2-q2", Prompt: "Crashing a schedule means…",
				Options: []string{
					"Abandoning the baseline",
					"Overlapping sequential tasks",
					"Adding resources to shorten critical tasks",
					"Cutting scope to hit the date",
				}, CorrectIndex: 2, XP: 10},
			{ID: "d2-q3", Prompt: "Why pool contingency into visible buffers instead of padding tasks?",
				Options: []string{
					"It makes the Gantt chart shorter",
					"Estimates stay honest and buffer consumption can be managed",
					"Auditors require it",
					"It eliminates the critical path",
				}, CorrectIndex: 1, XP: 15},
		}},
		{ID: "day-3", Day: 3, Title: "Managing Risk", DeckID: "deck-risk", Questions: []Question{
			{ID: "d3-q1", Prompt: "Which fields belong in a risk register entry?",
				Options: []string{
					"Risk, probability, impact, owner, response",
					"Task, duration, predecessor",
					"Stakeholder, influence, interest",
					"Budget line, actuals, variance",
				}, CorrectIndex: 0, XP: 10},
			{ID: "d3-q2", Prompt: "Transferring a risk means…",
				Options: []string{
					"Assigning it to a junior team member",
					"Moving it to next sprint",
					"Shifting its impact to a third party, e.g. via insurance",
					"Deleting it from the register",
				}, CorrectIndex: 2, XP: 10},
			{ID: "d3-q3", Prompt: "An unvalidated assumption is best described as…",
				Options: []string{
					"A stakeholder requirement",
					"A risk in disguise",
					"A completed milestone",
					"A quality metric",
				}, CorrectIndex: 1, XP: 15},
		}},
		{ID: "day-4", Day: 4, Title: "People & Communication", DeckID: "deck-stakeholder", Questions: []Question{
			{ID: "d4-q1", Prompt: "How many Accountable roles should a RACI deliverable have?",
				Options: []string{"Exactly one", "At least two", "One per department", "None, if there is a Responsible"},
				CorrectIndex: 0, XP: 10},
			{ID: "d4-q2", Prompt: "High influence, low interest stakeholders should be…",
				Options: []string{"Ignored", "Kept satisfied", "Managed closely", "Moved to the project team"},
				CorrectIndex: 1, XP: 10},
			{ID: "d4-q3", Prompt: "RAG status reporting only works when…",
				Options: []string{
					"Everything is green",
					"Reports go out daily",
					"Reporting red is safe",
					"Only executives receive it",
				}, CorrectIndex: 2, XP: 15},
		}},
		{ID: "day-5", Day: 5, Title: "Quality & Delivery", DeckID: "deck-quality", Questions: []Question{
			{ID: "d5-q1", Prompt: "A Definition of Done primarily exists to…",
				Options: []string{
					"Speed up standups",
					"Make 'done' mean the same thing to everyone",
					"Replace acceptance criteria",
					"Track velocity",
				}, CorrectIndex: 1, XP: 10},
			{ID: "d5-q2", Prompt: "When should acceptance criteria be written?",
				Options: []string{"After the demo", "During testing", "Before the work starts", "At project close"},
				CorrectIndex: 2, XP: 10},
			{ID: "d5-q3", Prompt: "What makes a retrospective actually improve the team?",
				Options: []string{
					"Collecting as many ideas as possible",
					"Assigning blame for failures",
					"Following through on a chosen improvement",
					"Keeping it under ten minutes",
				}, CorrectIndex: 2, XP: 15},
		}},
	}
}
