package rules

import (
	"deskorg/internal/config"
	"deskorg/internal/keywords"
)

// DocumentExtensions are the extensions eligible for content scoring.
var DocumentExtensions = []string{
	".pdf", ".doc", ".docx", ".txt", ".md", ".rtf", ".ppt", ".pptx", ".xls", ".xlsx",
}

// DefaultExtensionRules returns the built-in extension table.
func DefaultExtensionRules() []ExtensionRule {
	return []ExtensionRule{
		{
			Group:      "shortcuts",
			Extensions: []string{".lnk", ".url", ".desktop", ".webloc"},
			Category:   CategoryShortcuts,
		},
		{
			Group:      "images",
			Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp", ".ico", ".tiff", ".heic"},
			Category:   CategoryImages,
			SubRules: []SubRule{
				{When: Contains("whatsapp"), Subcategory: SubWhatsApp},
				{When: Contains("screenshot"), Subcategory: SubScreenshots},
				{When: HasPrefix("img_"), Subcategory: SubCamera},
				{When: Always(), Subcategory: SubOther},
			},
		},
		{
			Group:      "videos",
			Extensions: []string{".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv", ".webm"},
			Category:   CategoryVideos,
			SubRules: []SubRule{
				{When: Contains("whatsapp"), Subcategory: SubWhatsApp},
				{When: Always(), Subcategory: SubOther},
			},
		},
		{
			Group:      "audio",
			Extensions: []string{".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a"},
			Category:   CategoryAudio,
		},
		{
			Group:      "archives",
			Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz", ".bz2"},
			Category:   CategoryArchives,
			SubRules: []SubRule{
				{When: Contains("camscanner"), Primary: CategoryWork, Subcategory: SubCamScanner},
			},
		},
		{
			Group:      "html",
			Extensions: []string{".html", ".htm"},
			Category:   CategoryHTML,
		},
	}
}

// FromKeywords builds the full table set from configured keyword lists.
func FromKeywords(kw config.Keywords) (Tables, error) {
	languages := make([]keywords.Set, 0, len(kw.Languages))
	for _, lang := range kw.Languages {
		languages = append(languages, keywords.Set{Label: lang.Name, Keywords: lang.Keywords})
	}

	work := ContentRule{Category: CategoryWork, Keywords: kw.Work}
	if len(languages) > 0 {
		work.Tiers = append(work.Tiers, Tier{Subcategory: SubLanguageSection, Sets: languages, NameLeaf: true})
	}
	if len(kw.MiscProjects) > 0 {
		work.Tiers = append(work.Tiers, Tier{
			Subcategory: SubMiscProjects,
			Sets:        []keywords.Set{{Label: SubMiscProjects, Keywords: kw.MiscProjects}},
		})
	}

	tables := Tables{
		Extension: DefaultExtensionRules(),
		Documents: DocumentExtensions,
		Content: []ContentRule{
			{Category: CategoryStudy, Keywords: kw.Study},
			{Category: CategoryBusinessTech, Keywords: kw.BusinessTech},
			work,
		},
		Uncategorized: CategoryUncategorized,
	}
	return tables.Compile()
}

// FromConfig builds the tables for cfg.
func FromConfig(cfg *config.Config) (Tables, error) {
	if cfg == nil {
		return Default(), nil
	}
	return FromKeywords(cfg.Keywords)
}

// Default returns the built-in tables with the default keyword lists.
func Default() Tables {
	tables, err := FromKeywords(config.DefaultKeywords())
	if err != nil {
		panic(err)
	}
	return tables
}
