package models

// GistSummary is the part of a REST gist listing needed to spot ticket candidates.
type GistSummary struct {
	ID     string
	NodeID string
	Files  []string
}

// GistNode is a gist as returned by the GraphQL nodes query.
type GistNode struct {
	NodeID      string
	Description string
	Files       []GistNodeFile
}

// GistNodeFile holds a file name and its text. Text is nil for binary or truncated files.
type GistNodeFile struct {
	Name string
	Text *string
}
