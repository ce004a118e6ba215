package catalog

import (
	"regexp"

	"github.com/noemalabs/noema/internal/domain"
)

var english = &Catalog{
	Language: "en",

	Biases: []BiasPattern{
		{
			Name:    "confirmation bias",
			Markers: []string{"always", "never", "absolutely", "definitely", "undoubtedly", "unquestionably", "obviously"},
			Context: []string{"assertion", "without evidence"},
		},
		{
			Name:    "black-and-white thinking",
			Markers: []string{"either", "or", "only", "exclusively", "all", "nothing", "completely"},
			Context: []string{"extremes", "lack of nuance"},
		},
		{
			Name:    "emotional reasoning",
			Markers: []string{"feel", "seems", "sense", "think", "believe", "hope", "fear"},
			Context: []string{"emotions", "without facts"},
		},
		{
			Name:    "hasty generalization",
			Markers: []string{"all", "every", "no one", "always", "never", "everywhere", "nowhere"},
			Context: []string{"generalization", "few examples"},
		},
	},

	ContradictionPairs: []WordPair{
		{"not", "yes"}, {"no", "yes"}, {"bad", "good"},
		{"impossible", "possible"}, {"incorrect", "correct"},
	},

	LogicalConnectors: []string{
		"therefore", "consequently", "thus", "as a result",
		"however", "but", "nevertheless", "on the other hand",
		"firstly", "secondly", "additionally", "moreover",
	},

	EvidencePatterns: compilePatterns(
		`\d+%`, `\d+\.\d+`, `research`, `data`, `statistics`,
		`fact`, `evidence`, `example`, `case`,
	),

	UncertaintyMarkers: []string{"possibly", "probably", "seems", "might be", "i assume"},
	CertaintyMarkers:   []string{"definitely", "surely", "undoubtedly", "obviously", "unquestionably", "clearly"},

	AmbiguityMarkers: []string{"unclear", "undefined", "may be", "possibly", "if", "or", "ambiguous", "vague"},

	PositiveWords: []string{"good", "excellent", "great", "success", "joy", "happy", "positive", "optimistic"},
	NegativeWords: []string{"bad", "terrible", "failure", "sadness", "problem", "unhappy", "negative", "pessimistic"},

	Domains: []DomainCategory{
		{Key: "domain_programming", Keywords: []string{"code", "program", "algorithm", "software", "development", "bug", "feature"}},
		{Key: "domain_business", Keywords: []string{"marketing", "sales", "client", "revenue", "profit", "strategy", "market"}},
		{Key: "domain_science", Keywords: []string{"science", "research", "data", "experiment", "theory", "hypothesis", "analysis"}},
	},

	StrategyProfiles: map[domain.ThinkingStrategy]StrategyProfile{
		domain.StrategyCritical: {
			Categories: []MarkerCategory{
				{Name: "argumentation", Markers: []string{"because", "therefore", "thus", "this proves", "based on", "stemming from"}},
				{Name: "evaluation", Markers: []string{"reliability", "validity", "justification", "verification", "confirmation", "substantiation"}},
				{Name: "analysis", Markers: []string{"consider", "analyze", "investigate", "break down", "examine", "evaluate"}},
				{Name: "refutation", Markers: []string{"refutes", "contradicts", "inconsistent with", "raises doubts", "requires verification"}},
			},
			Bonus: BonusRule{
				Kind:  BonusPairedKeywords,
				Pairs: []WordPair{{"if", "then"}, {"although", "but"}, {"despite", "yet"}},
				Score: 0.2,
			},
		},
		domain.StrategySystemic: {
			Categories: []MarkerCategory{
				{Name: "interconnections", Markers: []string{"interconnection", "link between", "affects", "depends on", "components", "system elements"}},
				{Name: "structure", Markers: []string{"structure", "organization", "hierarchy", "subsystem"}},
				{Name: "dynamics", Markers: []string{"cycle", "feedback loop", "system behavior", "emergence"}},
				{Name: "boundaries", Markers: []string{"system boundaries", "external environment", "internal factors"}},
			},
			Bonus: BonusRule{
				Kind:  BonusAnyKeyword,
				Words: []string{"cause", "effect", "leads to"},
				Score: 0.1,
			},
		},
		domain.StrategyLateral: {
			Categories: []MarkerCategory{
				{Name: "analogies", Markers: []string{"analogy", "similar to", "as if", "metaphor"}},
				{Name: "reframing", Markers: []string{"re-evaluate", "new perspective", "unconventional", "different view"}},
				{Name: "provocation", Markers: []string{"what if", "imagine", "and if"}},
				{Name: "associations", Markers: []string{"random word", "unrelated", "sudden idea"}},
			},
			Bonus: BonusRule{
				Kind:  BonusAnyKeyword,
				Words: []string{"why not", "what if"},
				Score: 0.15,
			},
		},
		domain.StrategyStrategic: {
			Categories: []MarkerCategory{
				{Name: "goals", Markers: []string{"goal", "objective", "outcome", "achieve"}},
				{Name: "planning", Markers: []string{"plan", "strategy", "stages", "actions", "steps"}},
				{Name: "future", Markers: []string{"long-term", "perspective", "future", "forecast", "scenario"}},
				{Name: "resources", Markers: []string{"resources", "budget", "time", "people", "assets"}},
				{Name: "risks", Markers: []string{"risk", "opportunity", "threat", "potential"}},
			},
			Bonus: BonusRule{
				Kind:  BonusAnyKeyword,
				Words: []string{"priority", "choice"},
				Score: 0.1,
			},
		},
		domain.StrategyEmpathetic: {
			Categories: []MarkerCategory{
				{Name: "perspective", Markers: []string{"viewpoint", "position", "through someone's eyes"}},
				{Name: "feelings", Markers: []string{"feelings", "emotions", "experiences", "sensations"}},
				{Name: "motivation", Markers: []string{"motivation", "needs", "desires", "why"}},
				{Name: "understanding", Markers: []string{"understand", "see", "realize", "imagine"}},
			},
			Bonus: BonusRule{
				Kind:       BonusPronounPeople,
				Pronouns:   []string{"we", "they", "their"},
				PeopleRefs: []string{"people", "clients", "users"},
				Score:      0.1,
			},
		},
		domain.StrategyAbstract: {
			Categories: []MarkerCategory{
				{Name: "concepts", Markers: []string{"concept", "idea", "principle", "theory", "model"}},
				{Name: "generalization", Markers: []string{"generalization", "abstraction", "general", "universal"}},
				{Name: "classification", Markers: []string{"classification", "category", "type", "kind"}},
				{Name: "symbols", Markers: []string{"symbol", "sign", "representation"}},
			},
			Bonus: BonusRule{
				Kind:  BonusNoConcreteExamples,
				Words: []string{"for example", "specifically"},
				Score: 0.1,
			},
		},
		domain.StrategyPractical: {
			Categories: []MarkerCategory{
				{Name: "action", Markers: []string{"action", "implementation", "application", "do", "execute"}},
				{Name: "result", Markers: []string{"result", "effect", "benefit", "advantage", "achievement"}},
				{Name: "resources", Markers: []string{"resources", "budget", "time", "tools", "materials"}},
				{Name: "constraints", Markers: []string{"constraint", "obstacle", "difficulty", "opportunity"}},
			},
			Bonus: BonusRule{
				Kind:  BonusAnyKeyword,
				Words: []string{"create", "develop", "implement", "optimize", "improve"},
				Score: 0.1,
			},
		},
		domain.StrategyIntegrative: {
			Categories: []MarkerCategory{
				{Name: "synthesis", Markers: []string{"integration", "synthesis", "combination", "fusion", "holistic", "unified", "merger"}},
				{Name: "diversity", Markers: []string{"different viewpoints", "different approaches", "multifaceted", "diversity", "includes"}},
				{Name: "balance", Markers: []string{"balance", "harmony", "compromise", "coordination", "optimal combination"}},
			},
			Bonus: BonusRule{
				Kind:  BonusAnyKeyword,
				Words: []string{"win-win", "synergy"},
				Score: 0.15,
			},
		},
		domain.StrategyEvolutionary: {
			Categories: []MarkerCategory{
				{Name: "development", Markers: []string{"development", "evolution", "progress", "growth", "change"}},
				{Name: "adaptation", Markers: []string{"adaptation", "adjustment", "flexibility", "response to changes"}},
				{Name: "iteration", Markers: []string{"iteration", "repetition", "cycle", "gradually", "phases"}},
				{Name: "feedback", Markers: []string{"feedback", "lessons", "experience", "correction"}},
			},
			Bonus: BonusRule{
				Kind:  BonusAnyKeyword,
				Words: []string{"learning", "improvement"},
				Score: 0.1,
			},
		},
		domain.StrategyConvergent: {
			Categories: []MarkerCategory{
				{Name: "choice", Markers: []string{"choice", "decision", "optimal", "best", "single"}},
				{Name: "criteria", Markers: []string{"criteria", "evaluation", "comparison", "analysis", "filter"}},
				{Name: "narrowing", Markers: []string{"narrowing", "focus", "specific", "particular"}},
				{Name: "conclusion", Markers: []string{"conclusion", "inference", "summary", "result"}},
			},
			Bonus: BonusRule{
				Kind:  BonusAnyKeyword,
				Words: []string{"thus", "therefore", "consequently"},
				Score: 0.1,
			},
		},
		domain.StrategyDivergent: {
			Categories: []MarkerCategory{
				{Name: "generation", Markers: []string{"generation", "idea", "option", "alternative", "suggestion"}},
				{Name: "expansion", Markers: []string{"expansion", "multitude", "variety", "more", "new"}},
				{Name: "brainstorming", Markers: []string{"brainstorming", "creativity", "unconventional", "creative"}},
				{Name: "exploration", Markers: []string{"exploration", "study", "search", "discovery"}},
			},
			Bonus: BonusRule{
				Kind:  BonusAnyKeyword,
				Words: []string{"how else can", "what if"},
				Score: 0.15,
			},
		},
		domain.StrategyReflective: {
			Categories: []MarkerCategory{
				{Name: "self_analysis", Markers: []string{"reflection", "self-analysis", "contemplation", "my experience", "i think"}},
				{Name: "lessons", Markers: []string{"lesson", "conclusion", "experience", "extract", "learn"}},
				{Name: "process", Markers: []string{"thinking process", "how i thought", "my approach", "strategy"}},
				{Name: "reassessment", Markers: []string{"reassessment", "re-evaluation", "adjustment", "change of mind"}},
			},
			Bonus: BonusRule{
				Kind:  BonusAnyKeyword,
				Words: []string{"future improvement", "reapplication"},
				Score: 0.1,
			},
		},
	},

	StrategyDescriptions: map[domain.ThinkingStrategy]string{
		domain.StrategyLinear:        "Sequential linear thinking: step by step",
		domain.StrategyTree:          "Tree-like exploration of alternatives: branching and merging",
		domain.StrategyDialectical:   "Dialectical thinking: thesis-antithesis-synthesis",
		domain.StrategySystematic:    "Systematic analysis: by components",
		domain.StrategyCreative:      "Creative non-linear thinking: finding new ideas",
		domain.StrategyAnalytical:    "Strictly logical analysis: deduction and induction",
		domain.StrategyMetacognitive: "Thinking about thinking: self-analysis of the process",
		domain.StrategyCritical:      "Critical thinking: evaluating information reliability and arguments",
		domain.StrategySystemic:      "Systemic thinking: analyzing holistic systems and their interconnections",
		domain.StrategyLateral:       "Lateral thinking: seeking non-obvious solutions and unconventional approaches",
		domain.StrategyStrategic:     "Strategic thinking: analyzing long-term consequences and planning",
		domain.StrategyEmpathetic:    "Empathetic thinking: considering viewpoints and feelings of others",
		domain.StrategyAbstract:      "Abstract thinking: working with models, theories, and generalizations",
		domain.StrategyPractical:     "Practical thinking: focusing on feasibility and concrete results",
		domain.StrategyIntegrative:   "Integrative thinking: synthesizing different viewpoints and approaches",
		domain.StrategyEvolutionary:  "Evolutionary thinking: iterative development and adaptation",
		domain.StrategyConvergent:    "Convergent thinking: finding the optimal solution and narrowing options",
		domain.StrategyDivergent:     "Divergent thinking: generating multiple alternatives and ideas",
		domain.StrategyReflective:    "Reflective thinking: self-analysis of the thinking process and extracting lessons",
	},

	strings: map[string]string{
		"conflict_semantic_contradiction": "semantic_contradiction",

		"reason_high_complexity":       "High complexity requires a systemic approach",
		"reason_detailed_analysis":     "Detailed analysis of components is needed",
		"reason_ambiguity_critical":    "Ambiguity requires critical analysis",
		"reason_opposing_viewpoints":   "Consideration of opposing viewpoints",
		"reason_emotional_empathetic":  "Emotional context requires an empathetic approach",
		"reason_reflection_needed":     "Reflection on emotional aspects is needed",
		"reason_previously_effective":  "This strategy was effective in similar situations",
		"reason_explore_alternatives":  "Try exploring alternative directions",
		"reason_analyze_approach":      "Analyze your approach to the solution",
		"reason_systematic_analysis":   "Use systematic analysis",
		"reason_strict_logic":          "Apply strict logical analysis",
		"reason_creative_approach":     "Try a creative approach",
		"reason_more_alternatives":     "Generate more alternatives",
		"recommendation_reasoning":     "Recommendations are based on context analysis and effectiveness history",
		"recommend_break_down_task":    "Consider breaking down complex tasks into simpler sub-tasks",
		"recommend_bias_attention":     "Pay attention to cognitive biases in reasoning",
		"recommend_strategy_ineffective": "The current thinking strategy might be ineffective, consider alternatives",

		"analysis_no_thoughts": "No thoughts to analyze",

		"domain_programming": "programming",
		"domain_business":    "business",
		"domain_science":     "science",
		"domain_general":     "general",

		"trend_improving": "Improving",
		"trend_declining": "Declining",
		"trend_stable":    "Stable",

		"summary_processed_thoughts": "Processed %d thoughts with %.2f coherence",
		"summary_quality_trend":      "Quality trend: %s",
		"summary_detected_biases":    "Detected %d cognitive biases",

		"export_title":           "Thinking Session Export",
		"label_session_id":       "Session ID",
		"label_export_date":      "Export Date",
		"label_total_thoughts":   "Total Thoughts",
		"heading_thoughts":       "Thoughts",
		"label_strategy":         "Strategy",
		"label_quality":          "Quality",
		"label_clarity":          "Clarity",
		"label_logic":            "Logic",
		"label_evidence":         "Evidence",
		"label_detected_biases":  "Detected Biases",
		"description_unavailable": "Description unavailable",

		"error_empty_thought":      "Empty thought content",
		"error_session_not_found":  "Session not found",
		"error_thought_not_found":  "Thought %s not found",
		"error_unsupported_format": "Unsupported export format: %s",
	},
}

func compilePatterns(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}
