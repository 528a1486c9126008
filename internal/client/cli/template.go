package cli

import (
	"fmt"
	"text/template"

	"github.com/playlog/playlog/internal/client/iocli"
)

const gameTemplate = `
=== {{.Name}} ===

Slug:     {{.Slug}}
IGDB ID:  {{.IGDBID}}
{{- if .ReleaseDate }}
Released: {{.ReleaseDate}}
{{- end}}
{{- if .Rating }}
Rating:   {{printf "%.1f" .Rating}} ({{.TotalRatingCount}} ratings)
{{- end}}
{{- if .Summary }}

{{.Summary}}
{{- end}}
`

const threadTemplate = `
=== {{.Title}} ===

By {{.User.Username}} on {{.CreatedAt}}
Likes: {{.LikesCount}}  Replies: {{.RepliesCount}}

{{.Content}}
{{- if .Replies }}

--- Replies ---
{{- range .Replies }}

{{.User.Username}} ({{.CreatedAt}}):
{{.Content}}
{{- end}}
{{- else }}

No replies yet.
{{- end}}
`

const profileTemplate = `
=== {{.Username}} ===
{{- if .Bio }}

{{.Bio}}
{{- end}}

Played:    {{.PlayedGameCount}}
Diary:     {{.DiaryCount}}
Following: {{.FollowingCount}}
Followers: {{.FollowerCount}}
{{- if .Favorites }}

Favorites:
{{- range .Favorites }}
  - {{.Name}}
{{- end}}
{{- end}}
{{- if .RecentlyPlayed }}

Recently played:
{{- range .RecentlyPlayed }}
  - {{.Name}}
{{- end}}
{{- end}}
`

func renderTemplate(io iocli.IO, text string, data any) error {
	tmpl, err := template.New("output").Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse output template: %w", err)
	}
	if err := tmpl.Execute(io, data); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}
