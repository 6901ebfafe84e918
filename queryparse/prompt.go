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


package queryparse

import "fmt"

// buildParsePrompt builds the extraction prompt for a recruiter query.
// The filter vocabulary here must stay in sync with core.FilterSet: the
// model returns the wire key application_date, which decode converts to
// min_date_applied after date resolution.
func buildParsePrompt(query string) string {
	return fmt.Sprintf(`You are a recruiter search query parser. Extract structured search parameters from this query:

"%s"

Extract the following:
1. search_intent: The main role, skills, or qualifications to search for (used for semantic vector search)
2. min_experience: Minimum years of experience (float or null)
3. max_experience: Maximum years of experience (float or null)
4. location: Preferred city/location in Philippines (exact match: "Manila, Philippines", "Quezon City, Philippines", "Cebu City, Philippines", "Davao City, Philippines", etc.) (string or null)
5. education_level: Required education (exact match: "Bachelor's Degree", "Master's Degree", "Doctorate", "Associate's Degree", "Diploma/Vocational", "Not Specified") (string or null)
6. required_skills: Must-have technical skills as a list (e.g., ["AutoCAD", "Python", "Excel"]) (list or null)
7. seniority_keywords: Seniority level indicators like "senior", "junior", "lead", etc. (list or null)
8. desired_job_titles: List of job title keywords to match (e.g., ["Software Engineer", "Developer", "Python Developer"]) (list or null)
9. target_companies: List of company names to search for, including variations (e.g., ["Google", "Microsoft", "Amazon"]) (list or null)
10. application_date: Relative date string for filtering recent applicants (e.g., "last 30 days", "recent", "after January 2025") (string or null)

Important rules:
- For locations, always add ", Philippines" suffix if not present
- For experience, extract numbers like "5+", "3-5", "at least 7", etc.
- Keep search_intent concise and focused on the semantic meaning
- For job titles, extract the specific roles mentioned (e.g., "Software Engineer", "Developer", "Civil Engineer")
- For companies, extract company names mentioned with keywords like "at", "from", "worked at"
- For dates, extract relative time references like "recent", "last 30 days", "after January 2025", "this month"
- Only extract what's explicitly mentioned or strongly implied
- If nothing is mentioned for a field, use null

Return ONLY a valid JSON object with this exact structure:
{
    "search_intent": "string describing what to search for",
    "filters": {
        "min_experience": float or null,
        "max_experience": float or null,
        "location": "string or null",
        "education_level": "string or null",
        "required_skills": ["list", "of", "skills"] or null,
        "seniority_keywords": ["list", "of", "levels"] or null,
        "desired_job_titles": ["list", "of", "job", "titles"] or null,
        "target_companies": ["list", "of", "companies"] or null,
        "application_date": "string or null"
    }
}

Examples:

Query: "Senior Python developer with Django, 5+ years"
{
    "search_intent": "Python developer with Django experience",
    "filters": {
        "min_experience": 5.0,
        "max_experience": null,
        "location": null,
        "education_level": null,
        "required_skills": ["Python", "Django"],
        "seniority_keywords": ["senior"],
        "desired_job_titles": ["Python Developer", "Software Developer"],
        "target_companies": null,
        "application_date": null
    }
}

Query: "Software engineer from Google or Microsoft who applied last month"
{
    "search_intent": "software engineer with experience at top tech companies",
    "filters": {
        "min_experience": null,
        "max_experience": null,
        "location": null,
        "education_level": null,
        "required_skills": null,
        "seniority_keywords": null,
        "desired_job_titles": ["Software Engineer"],
        "target_companies": ["Google", "Microsoft"],
        "application_date": "last 30 days"
    }
}

Query: "Civil engineer in Cebu with AutoCAD"
{
    "search_intent": "civil engineer with AutoCAD experience",
    "filters": {
        "min_experience": null,
        "max_experience": null,
        "location": "Cebu City, Philippines",
        "education_level": null,
        "required_skills": ["AutoCAD"],
        "seniority_keywords": null,
        "desired_job_titles": ["Civil Engineer"],
        "target_companies": null,
        "application_date": null
    }
}

Query: "Recent marketing manager applicants"
{
    "search_intent": "marketing manager with recent application",
    "filters": {
        "min_experience": null,
        "max_experience": null,
        "location": null,
        "education_level": null,
        "required_skills": ["marketing"],
        "seniority_keywords": null,
        "desired_job_titles": ["Marketing Manager"],
        "target_companies": null,
        "application_date": "recent"
    }
}

Now parse this query:
"%s"

Return ONLY the JSON, no other text.`, query, query)
}
