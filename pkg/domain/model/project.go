package model

import (
	"strings"
	"time"
)

// ProjectSummary is a recently active repository as served by the projects endpoint.
type ProjectSummary struct {
	Name       string    `json:"name"`
	Summary    *string   `json:"summary"`
	Tags       []string  `json:"tags"`
	Repository string    `json:"repository"`
	Site       *string   `json:"site"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewProjectSummary(repo *RepositoryDetail) *ProjectSummary {
	return &ProjectSummary{
		Name:       repo.Name,
		Summary:    repo.Description,
		Tags:       NormalizeTags(repo.Topics),
		Repository: repo.HTMLURL,
		Site:       repo.Homepage,
		UpdatedAt:  repo.PushedAt,
	}
}

// NormalizeTags lowercases topics, keeping first-seen order and dropping duplicates. The result is never nil.
func NormalizeTags(topics []string) []string {
	tags := make([]string, 0, len(topics))
	seen := make(map[string]struct{}, len(topics))
	for _, topic := range topics {
		tag := strings.ToLower(topic)
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
