package documents

import (
	"time"

	"github.com/custodia-labs/regdoc/internal/core/reference"
)

var catalogue = []Entry{
	{
		ID:        "gdpr",
		Name:      "Regulation (EU) 2016/679 (General Data Protection Regulation)",
		Published: date(2016, time.April, 27),
		File:      "gdpr.csv",
		Grammars:  []reference.Grammar{articleGrammar},
		Priority:  "single grammar; a leading \"Article\" is accepted and dropped",
	},
	{
		ID:        "decision_making",
		Name:      "Guidelines on Automated individual decision-making and Profiling for the purposes of Regulation 2016/679",
		Published: date(2018, time.February, 6),
		File:      "decision_making.csv",
		Grammars:  []reference.Grammar{romanSectionGrammar, annexGrammar},
		Priority:  "body sections (II.A.4) before annexes; annexes need the \"Annex\" prefix",
	},
	{
		ID:        "covid_location",
		Name:      "Guidelines 04/2020 on the use of location data and contact tracing tools in the context of the COVID-19 outbreak",
		Published: date(2020, time.April, 21),
		File:      "covid_location.csv",
		Grammars:  []reference.Grammar{numericSectionGrammar},
		Priority:  "single grammar with no exclusions; \"Annex N\" fails the full pattern and is rejected",
	},
}

// articleGrammar numbers GDPR articles: 5, 5(1), 5(1)(a).
var articleGrammar = reference.Grammar{
	Name: "article",
	Levels: []reference.Level{
		{Pattern: `(\d+)`},
		{Pattern: `\((\d+)\)`, Separator: "(", Suffix: ")"},
		{Pattern: `\(([a-z])\)`, Separator: "(", Suffix: ")"},
	},
	Full:       `(Article )?\d+(\(\d+\)(\([a-z]\))?)?`,
	Exclusions: []string{"Article"},
}

// romanSectionGrammar numbers guideline bodies: II, II.A, II.A.4.
var romanSectionGrammar = reference.Grammar{
	Name: "main",
	Levels: []reference.Level{
		{Pattern: `\b(I|II|III|IV|V|VI)\b`},
		{Pattern: `\.([A-Z])`, Separator: "."},
		{Pattern: `\.(\d+)`, Separator: "."},
	},
	Full: `(I|II|III|IV|V|VI)(\.[A-Z](\.\d+)?)?`,
}

// annexGrammar numbers annexes: Annex 1.
var annexGrammar = reference.Grammar{
	Name:   "annex",
	Levels: []reference.Level{{Pattern: `Annex (\d+)`, Separator: "Annex "}},
	Full:   `Annex \d+`,
}

// numericSectionGrammar numbers guideline bodies: 3, 3.2.
var numericSectionGrammar = reference.Grammar{
	Name: "main",
	Levels: []reference.Level{
		{Pattern: `(\d+)`},
		{Pattern: `\.(\d+)`, Separator: "."},
	},
	Full: `(\d+)(\.(\d+))?`,
}
