// ABOUTME: Wire types for the Gerrit REST API, JSON-tagged per its documented field names.
// ABOUTME: Only the fields the shell displays are mapped; unknown fields are ignored on decode.

package gerrit

// Change is a ChangeInfo entity as returned by /changes/ endpoints.
type Change struct {
	Number          int                 `json:"_number"`
	ID              string              `json:"id"`
	ChangeID        string              `json:"change_id"`
	Project         string              `json:"project"`
	Branch          string              `json:"branch"`
	Status          string              `json:"status"`
	Subject         string              `json:"subject"`
	Updated         string              `json:"updated"`
	CurrentRevision string              `json:"current_revision"`
	Revisions       map[string]Revision `json:"revisions"`
	Owner           *Account            `json:"owner"`
}

// Revision is a RevisionInfo entity.
type Revision struct {
	Number int     `json:"_number"`
	Ref    string  `json:"ref"`
	Commit *Commit `json:"commit"`
}

// Commit is a CommitInfo entity.
type Commit struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Account is an AccountInfo entity.
type Account struct {
	AccountID int    `json:"_account_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Username  string `json:"username"`
}

// CurrentCommitMessage returns the commit message of the change's
// current revision, or "" when the server omitted revision data.
func (c *Change) CurrentCommitMessage() string {
	rev, ok := c.Revisions[c.CurrentRevision]
	if !ok || rev.Commit == nil {
		return ""
	}
	return rev.Commit.Message
}
