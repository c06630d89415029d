package registry

const (
	StatusComplete = "complete"
	StatusPartial  = "partial"
	StatusPlanned  = "planned"
)

// DefaultCatalog is the platform's prompt module table.
func DefaultCatalog() *Catalog {
	modules := defaultModules()
	return MustCatalog(progressOf("centralized-prompts", modules), modules...)
}

func progressOf(phase string, modules []Module) Progress {
	p := Progress{Phase: phase, TotalModules: len(modules)}
	for _, m := range modules {
		if m.Status == StatusComplete {
			p.CompletedModules++
		}
	}
	if p.TotalModules > 0 {
		p.Percent = p.CompletedModules * 100 / p.TotalModules
	}
	return p
}

func row(name string, count int, status, description string, prompts ...string) Module {
	return Module{
		Name: name,
		Entry: Entry{
			PromptCount: count,
			Description: description,
			Module:      "prompts/" + name,
			Status:      status,
			Prompts:     prompts,
		},
	}
}

func defaultModules() []Module {
	return []Module{
		row("matchmaker", 7, StatusComplete, "Partner and solution-provider matching",
			"partnerMatch", "enhancedMatch", "strategicFit", "synergyAnalysis", "bulkMatch", "matchExplanation", "dealFlow"),
		row("sandbox", 4, StatusComplete, "Regulatory sandbox applications and monitoring",
			"applicationEvaluation", "riskAssessment", "complianceCheck", "exitReport"),
		row("profiles", 2, StatusComplete, "Expert and organization profile enrichment",
			"profileEnrichment", "skillExtraction"),
		row("engagementHub", 5, StatusComplete, "Citizen engagement campaigns and messaging",
			"campaignSubjectLines", "messageDraft", "audienceSegments", "sentimentSummary", "followUpPlan"),
		row("challenges", 6, StatusComplete, "Municipal innovation challenge design",
			"challengeDescription", "problemStatement", "kpiSuggestions", "stakeholderMap", "challengeClassification", "duplicateCheck"),
		row("pilots", 5, StatusComplete, "Pilot planning and outcome prediction",
			"successPrediction", "pilotDesign", "kpiTracking", "scalingReadiness", "lessonsLearned"),
		row("strategy", 4, StatusComplete, "Strategic planning and portfolio gaps",
			"gapAnalysis", "strategyAlignment", "portfolioBalance", "objectiveDraft"),
		row("events", 3, StatusComplete, "Ecosystem event curation",
			"eventRecommendations", "agendaDraft", "eventSummary"),
		row("solutions", 4, StatusPartial, "Solution catalog assessment",
			"solutionAssessment", "marketReadiness", "competitiveLandscape", "solutionDescription"),
		row("programs", 4, StatusPartial, "Innovation program lifecycle",
			"programDesign", "cohortSelection", "programEvaluation", "curriculumOutline"),
		row("research", 3, StatusPartial, "Research and development projects",
			"rdProposalReview", "literatureScan", "researchGaps"),
		row("livingLabs", 3, StatusPartial, "Living lab operations",
			"labCapacityPlan", "experimentDesign", "citizenRecruitment"),
		row("partnerships", 3, StatusPartial, "Partnership agreements and health",
			"partnershipHealth", "mouDraft", "valueAssessment"),
		row("policy", 3, StatusPartial, "Policy recommendations",
			"policyBrief", "impactAssessment", "stakeholderFeedback"),
		row("knowledge", 2, StatusPartial, "Knowledge base curation",
			"articleSummary", "tagSuggestions"),
		row("ideas", 2, StatusComplete, "Citizen idea intake",
			"ideaEvaluation", "ideaClustering"),
		row("proposals", 2, StatusPartial, "Startup proposal screening",
			"proposalScoring", "feedbackDraft"),
		row("municipalities", 2, StatusPartial, "Municipality innovation profiles",
			"maturityAssessment", "benchmarkComparison"),
		row("budget", 2, StatusPlanned, "Budget allocation support",
			"allocationAdvice", "costEstimate"),
		row("scaling", 2, StatusPlanned, "Scaling and rollout planning",
			"rolloutPlan", "readinessCheck"),
		row("startups", 2, StatusPartial, "Startup ecosystem analytics",
			"startupProfile", "growthSignals"),
		row("network", 1, StatusPlanned, "Network and connection suggestions",
			"connectionSuggestions"),
		row("communications", 1, StatusPartial, "Official communications drafting",
			"announcementDraft"),
		row("reports", 1, StatusPartial, "Executive reporting",
			"executiveSummary"),
		row("translation", 1, StatusComplete, "Bilingual translation helpers",
			"formalArabicRewrite"),
	}
}
