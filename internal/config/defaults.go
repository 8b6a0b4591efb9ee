package config

const (
	defaultConfigPath     = "~/.config/deskorg/config.toml"
	defaultTextChars      = 10000
	defaultPDFPages       = 5
	defaultDocxParagraphs = 50
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Extraction: Extraction{
			TextChars:      defaultTextChars,
			PDFPages:       defaultPDFPages,
			DocxParagraphs: defaultDocxParagraphs,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Keywords: DefaultKeywords(),
	}
}

// DefaultKeywords returns the built-in keyword tables. Each call returns fresh
// slices so callers may mutate the result.
func DefaultKeywords() Keywords {
	return Keywords{
		Study: []string{
			"study", "lecture", "course", "university", "college", "exam", "homework",
			"assignment", "thesis", "dissertation", "syllabus", "linguistics", "discourse",
			"semantics", "pragmatics", "literature", "grammar", "research paper",
			"محاضرة", "جامعة", "دراسة", "بحث", "واجب", "امتحان", "مقرر", "لسانيات",
		},
		BusinessTech: []string{
			"business", "marketing", "startup", "entrepreneur", "finance", "investment",
			"strategy", "software", "programming", "developer", "python", "javascript",
			"database", "machine learning", "artificial intelligence", "cybersecurity",
			"blockchain", "تسويق", "أعمال", "برمجة", "تقنية", "ذكاء اصطناعي",
		},
		Work: []string{
			"translation", "translator", "translate", "client", "contract", "invoice",
			"deadline", "meeting", "proposal", "report", "project",
			"ترجمة", "مترجم", "عقد", "فاتورة", "عميل", "مشروع",
		},
		MiscProjects: []string{
			"miscellaneous", "misc", "personal project", "side project", "متفرقات", "مشاريع متنوعة",
		},
		Languages: []LanguageKeywords{
			{Name: "arabic", Keywords: []string{"arabic", "عربي", "العربية"}},
			{Name: "english", Keywords: []string{"english", "إنجليزي", "انجليزي", "الإنجليزية"}},
			{Name: "french", Keywords: []string{"french", "français", "francais", "فرنسي", "الفرنسية"}},
			{Name: "urdu", Keywords: []string{"urdu", "اردو", "أردو", "الأردية"}},
			{Name: "russian", Keywords: []string{"russian", "русский", "روسي", "الروسية"}},
		},
	}
}
