package agent

import (
	"fmt"
	"strings"

	"jobhunter-backend/internal/match"
	"jobhunter-backend/internal/profile"
)

// degradedReply substitutes for a job list when the corpus collaborator
// fails; the session stays live and the client still gets a 200.
const degradedReply = "I couldn't fetch job listings right now. Please try searching again in a moment — your profile and our conversation are safe."

// maxListedJobs caps how many postings the reply text walks through; the
// full ranked list still travels in job_suggestions.
const maxListedJobs = 3

func composeGreeting(p profile.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👋 Hello %s!\n\n", p.FirstName())
	b.WriteString("I'm your job hunting assistant. I've analyzed your resume")
	if skills := p.TopSkills(3); len(skills) > 0 {
		fmt.Fprintf(&b, " and found skills in: **%s**", strings.Join(skills, ", "))
	} else {
		fmt.Fprintf(&b, " and found %d positions in your work history", len(p.Experience))
	}
	b.WriteString(".\n\nHere's what I can help you with:\n")
	b.WriteString("1. **Find job opportunities** matching your skills\n")
	b.WriteString("2. **Give feedback** on your resume\n")
	b.WriteString("3. Provide **career advice** based on your experience\n\n")
	b.WriteString("What would you like to do?")
	return b.String()
}

func composeJobReply(results []match.Result) string {
	if len(results) == 0 {
		return "I couldn't find any jobs matching your criteria. Try adjusting your search terms or location."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ **I found %d job opportunities for you:**\n\n", len(results))
	for i, r := range results {
		if i >= maxListedJobs {
			break
		}
		job := r.Job
		fmt.Fprintf(&b, "**%d. %s**\n", i+1, job.Title)
		fmt.Fprintf(&b, "   **Company:** %s\n", job.Company)
		fmt.Fprintf(&b, "   **Location:** %s\n", job.Location)
		fmt.Fprintf(&b, "   **Match:** %.0f%%\n", r.MatchScore*100)
		salary := job.Salary
		if salary == "" {
			salary = "Not specified"
		}
		fmt.Fprintf(&b, "   **Salary:** %s\n", salary)
		if job.URL != "" {
			fmt.Fprintf(&b, "   [Apply Here](%s)\n", job.URL)
		}
		b.WriteString("\n")
	}
	b.WriteString("Would you like me to search for more specific roles or adjust the search criteria?")
	return b.String()
}

func composeFreeform(suggestionCount int) string {
	msg := "I can help you find jobs, give resume feedback, or provide career advice. What would you like to do?"
	if suggestionCount > 0 {
		msg = fmt.Sprintf("I still have %d job suggestions from your last search. %s", suggestionCount, msg)
	}
	return msg
}

// commonSkills are frequently requested in postings; feedback points out
// the ones a profile is missing.
var commonSkills = []string{"aws", "docker", "typescript", "sql", "python"}

func composeFeedback(p profile.Profile) string {
	var b strings.Builder
	b.WriteString("Based on your resume, here are some suggestions:\n\n")

	n := 1
	undescribed := 0
	for _, exp := range p.Experience {
		if strings.TrimSpace(exp.Description) == "" {
			undescribed++
		}
	}
	if undescribed > 0 {
		fmt.Fprintf(&b, "%d. **Describe your roles**: %d of your %d positions have no description. Add quantified achievements (e.g., \"Improved performance by 20%%\").\n", n, undescribed, len(p.Experience))
		n++
	} else {
		fmt.Fprintf(&b, "%d. **Quantify achievements**: add numbers to your experience descriptions (e.g., \"Improved performance by 20%%\").\n", n)
		n++
	}

	if missing := missingCommonSkills(p); len(missing) > 0 {
		fmt.Fprintf(&b, "%d. **Expand skills**: your %d listed skills are a good base; consider adding %s if you have exposure.\n", n, len(p.Skills), strings.Join(missing, ", "))
		n++
	}

	if strings.TrimSpace(p.Summary) == "" {
		fmt.Fprintf(&b, "%d. **Add a summary**: a short summary targeting the roles you want makes the resume easier to scan.\n", n)
	} else {
		fmt.Fprintf(&b, "%d. **Sharpen your summary**: make it specific to the roles you're targeting.\n", n)
	}

	b.WriteString("\nYour resume looks good overall! Focus on tailoring it for specific job applications.")
	return b.String()
}

func missingCommonSkills(p profile.Profile) []string {
	have := make(map[string]struct{}, len(p.Skills))
	for _, s := range p.Skills {
		have[strings.ToLower(s)] = struct{}{}
	}
	var missing []string
	for _, s := range commonSkills {
		if _, ok := have[s]; !ok {
			missing = append(missing, s)
		}
		if len(missing) == 3 {
			break
		}
	}
	return missing
}

func composeAdvice(p profile.Profile) string {
	var b strings.Builder
	if skills := p.TopSkills(3); len(skills) > 0 {
		fmt.Fprintf(&b, "With your strengths in %s, ", strings.Join(skills, ", "))
	} else {
		b.WriteString("Given your background, ")
	}
	fmt.Fprintf(&b, "I'd focus on %s roles that build on what you already do well.\n\n", p.ExperienceLevel())
	b.WriteString("A few directions worth considering:\n")
	b.WriteString("- Target companies where your core skills are central to the product, not peripheral.\n")
	b.WriteString("- Keep one growth skill in active practice and make it visible on your resume.\n")
	b.WriteString("- Tailor each application to the posting; generic applications convert poorly.\n\n")
	b.WriteString("Ask me to search for openings whenever you want to see what's out there.")
	return b.String()
}
