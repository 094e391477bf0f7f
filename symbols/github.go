package symbols

// Built-in qualifier grammar for GitHub issue and pull request search.
// Set-based qualifiers list their mutually-exclusive value sets in a
// fixed order; typed qualifiers name the scalar type their value must
// have.

var setQualifiers = map[string][]ValueSet{
	"archived": {{"true", "false"}},
	"draft":    {{"true", "false"}},
	"in":       {{"title", "body", "comments"}},
	"is":       {{"locked", "unlocked"}, {"merged", "unmerged"}, {"public", "private"}, {"open", "closed"}, {"pr", "issue"}},
	"linked":   {{"pr", "issue"}},
	"no":       {{"label", "milestone", "assignee", "project"}},
	"reason":   {{"completed", "not planned"}},
	"review":   {{"none", "required", "approved", "changes_requested"}},
	"state":    {{"open", "closed"}},
	"status":   {{"pending", "success", "failure"}},
	"type":     {{"pr", "issue"}},
}

var typedQualifiers = map[string]ValueType{
	"assignee":              TypeString,
	"author":                TypeString,
	"base":                  TypeString,
	"commenter":             TypeString,
	"head":                  TypeString,
	"involves":              TypeString,
	"label":                 TypeString,
	"language":              TypeString,
	"mentions":              TypeString,
	"milestone":             TypeString,
	"org":                   TypeString,
	"project":               TypeString,
	"repo":                  TypeString,
	"team":                  TypeString,
	"team-review-requested": TypeString,
	"topic":                 TypeString,
	"user":                  TypeString,

	"comments":     TypeNumber,
	"interactions": TypeNumber,
	"reactions":    TypeNumber,

	"closed":  TypeDate,
	"created": TypeDate,
	"merged":  TypeDate,
	"pushed":  TypeDate,
	"updated": TypeDate,
}

// NewGitHubTable returns a table seeded with the built-in GitHub search
// qualifiers.
func NewGitHubTable() *Table {
	t := NewTable()
	for name, sets := range setQualifiers {
		t.Add(Symbol{Kind: KindStatic, Name: name, ValueSets: sets})
	}
	for name, typ := range typedQualifiers {
		t.Add(Symbol{Kind: KindStatic, Name: name, Type: typ})
	}
	return t
}
