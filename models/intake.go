package models

import (
	"errors"
	"fmt"
	"net/url"
)

// IntakeQueryKey is the query parameter carrying the free-text instruction.
const IntakeQueryKey = "query"

var ErrInvalidIntakeEndpoint = errors.New("intake endpoint must be an absolute URL")

// IntakeTarget describes where the intake form sends the browser: a fixed
// endpoint plus one static tag parameter identifying this client.
type IntakeTarget struct {
	Endpoint string `json:"endpoint"`
	TagKey   string `json:"tag_key"`
	TagValue string `json:"tag_value"`
}

// Validate checks that the endpoint is absolute and a tag key is set.
func (t IntakeTarget) Validate() error {
	u, err := url.Parse(t.Endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidIntakeEndpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidIntakeEndpoint, t.Endpoint)
	}
	if t.TagKey == "" {
		return errors.New("intake tag key is required")
	}
	return nil
}

// Build returns the navigation target for a submitted instruction. It appends
// query=<instruction> and then the tag parameter to whatever query the
// endpoint already carries, in that order, as the page script does with
// URL.searchParams.append. Percent-encoding of a few characters differs from
// the browser's (Go escapes '*', the browser escapes '~'); the decoded
// parameters are identical. Credential fields of the form never reach it.
func (t IntakeTarget) Build(instruction string) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	u, _ := url.Parse(t.Endpoint)
	if u.Path == "" {
		u.Path = "/"
	}

	extra := IntakeQueryKey + "=" + url.QueryEscape(instruction) +
		"&" + url.QueryEscape(t.TagKey) + "=" + url.QueryEscape(t.TagValue)
	if u.RawQuery == "" {
		u.RawQuery = extra
	} else {
		u.RawQuery += "&" + extra
	}
	return u.String(), nil
}

// FormField is one text input of the intake form.
type FormField struct {
	ID          string
	Label       string
	Placeholder string
}

// InstructionField is the free-text input whose value is forwarded.
var InstructionField = FormField{
	ID:          "textField",
	Label:       "Tell me what to do (e.g., Analyze JIRA Issue# TP-3)",
	Placeholder: "Type something here...",
}

// OptionalFields returns the credential inputs shown under the instruction.
// They are collected on the page but never read on submit.
func OptionalFields() []FormField {
	return []FormField{
		{ID: "jiraUrl", Label: "JIRA URL (Optional)", Placeholder: "https://your-jira-instance.com"},
		{ID: "jiraUserName", Label: "JIRA User Name (Optional)", Placeholder: "Enter your JIRA username"},
		{ID: "jiraToken", Label: "JIRA Token (Optional)", Placeholder: "Enter your JIRA API token"},
		{ID: "githubHost", Label: "GitHub Host (Optional)", Placeholder: "e.g., github.com or github.mycompany.com"},
		{ID: "githubToken", Label: "GitHub Token (Optional)", Placeholder: "Enter your GitHub personal access token"},
		{ID: "githubRepoName", Label: "GitHub Repository (Optional)", Placeholder: "e.g., my-repo"},
	}
}
