// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingestion

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/poiesic/talentsearch/core"
)

// rawApplicant mirrors one record of the upstream ETL's JSON output. The
// field names are the ETL's, not ours, and must not change.
type rawApplicant struct {
	ID                   string    `json:"id"`
	FullName             string    `json:"full_name"`
	Email                string    `json:"email"`
	JobTitle             string    `json:"job_title"`
	CurrentStage         string    `json:"current_stage"`
	EducationLevel       string    `json:"education_level"`
	TotalYearsExperience float64   `json:"total_years_experience"`
	LongestTenureYears   float64   `json:"longest_tenure_years"`
	CurrentCompany       string    `json:"current_company"`
	CompanyNames         string    `json:"company_names"`
	Location             string    `json:"location"`
	SkillsExtracted      string    `json:"skills_extracted"`
	TasksSummary         string    `json:"tasks_summary"`
	ResumeFullText       string    `json:"resume_full_text"`
	ResumeURL            string    `json:"resume_url"`
	DateApplied          int64     `json:"date_applied"`
	EmbeddingResume      []float32 `json:"embedding_resume"`
	EmbeddingSkills      []float32 `json:"embedding_skills"`
	EmbeddingTasks       []float32 `json:"embedding_tasks"`
}

// toApplicant converts an ETL record into the domain model. The record id
// becomes SourceID; the storage id is derived later by the pipeline.
func (r *rawApplicant) toApplicant() *core.Applicant {
	return &core.Applicant{
		SourceID:        r.ID,
		FullName:        r.FullName,
		Email:           r.Email,
		JobTitle:        r.JobTitle,
		CurrentStage:    r.CurrentStage,
		EducationLevel:  r.EducationLevel,
		YearsExperience: r.TotalYearsExperience,
		LongestTenure:   r.LongestTenureYears,
		CurrentCompany:  r.CurrentCompany,
		PastCompanies:   splitCompanies(r.CompanyNames),
		Location:        r.Location,
		SkillsText:      r.SkillsExtracted,
		TasksText:       r.TasksSummary,
		ResumeText:      r.ResumeFullText,
		ResumeURL:       r.ResumeURL,
		DateApplied:     time.Unix(r.DateApplied, 0).UTC(),
		ResumeVector:    r.EmbeddingResume,
		SkillsVector:    r.EmbeddingSkills,
		TasksVector:     r.EmbeddingTasks,
	}
}

// splitCompanies breaks the ETL's comma-separated company string into a
// list, dropping empty entries.
func splitCompanies(names string) []string {
	if names == "" {
		return nil
	}
	parts := strings.Split(names, ",")
	companies := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			companies = append(companies, trimmed)
		}
	}
	if len(companies) == 0 {
		return nil
	}
	return companies
}

// LoadDataset reads an ETL output file: one JSON array of applicant
// records with embeddings.
func LoadDataset(path string) ([]*core.Applicant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadDataset(f)
}

// ReadDataset decodes applicant records from a reader.
func ReadDataset(r io.Reader) ([]*core.Applicant, error) {
	var raw []rawApplicant
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}

	applicants := make([]*core.Applicant, 0, len(raw))
	for i := range raw {
		applicants = append(applicants, raw[i].toApplicant())
	}
	return applicants, nil
}
