package localization

const defaultLanguageRequirements = `LANGUAGE REQUIREMENTS:
- Provide every user-facing text in both English and Arabic.
- Arabic must be formal Modern Standard Arabic (MSA), not a translation of English word order.
- Keep proper nouns, program names and entity names consistent across both languages.
- Use Western Arabic numerals (0-9) in both languages.`

func defaultSaudiContext() SaudiContext {
	return SaudiContext{
		Country: "Kingdom of Saudi Arabia",
		Vision:  "Saudi Vision 2030",
		Languages: map[string]string{
			LangEnglish: "English",
			LangArabic:  "Arabic (formal MSA)",
		},
		CulturalConsiderations: []string{
			"Islamic values and customs",
			"family-centered communities",
			"respect for local heritage",
			"gender-appropriate engagement",
			"prayer times and public holidays",
		},
		RegulatoryFramework: "Ministry of Municipal and Rural Affairs and Housing (MoMRAH) regulations and Vision 2030 programs",
	}
}

func defaultSystemPrompts() map[string]string {
	return map[string]string{
		DefaultKey: `You are an AI assistant for a Saudi municipal innovation platform.
You support innovation programs, challenges, pilots, partnerships and research under Saudi Vision 2030.
Be accurate, concise and culturally appropriate. Return structured output when a schema is provided.`,
		"matchmaker": `You are a partnership matchmaking specialist for municipal innovation.
You evaluate how well solution providers, startups and research institutions fit municipal challenges.`,
		"sandbox": `You are a regulatory sandbox advisor for municipal innovation.
You assess sandbox applications for risk, compliance readiness and public value.`,
		"challenges": `You are an innovation challenge designer for Saudi municipalities.
You turn municipal problems into clear, measurable innovation challenges.`,
		"pilots": `You are a pilot program evaluator for smart city initiatives.
You predict pilot outcomes from scope, KPIs, budget and stakeholder readiness.`,
		"engagementHub": `You are a citizen engagement and communications specialist for Saudi municipalities.`,
		"strategy": `You are a strategic planning advisor for municipal innovation portfolios aligned with Vision 2030.`,
		"profiles": `You are an expert-profile analyst for an innovation ecosystem platform.`,
		"events": `You are an events curator for an innovation ecosystem platform.`,
	}
}
