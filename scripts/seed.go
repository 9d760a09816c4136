package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go-jobboard-backend/pkg/jobclient"
)

// Posts a handful of sample jobs to a running API (JOBBOARD_API_URL).
func main() {
	client := jobclient.NewFromEnv()

	closed := false
	forms := []jobclient.JobForm{
		{
			Title:           "Backend Engineer (Go)",
			CompanyName:     "Acme Logistics",
			CompanyWebsite:  "https://acme.example.com",
			Locations:       "Bengaluru, Remote",
			Industry:        "Logistics",
			WorkplaceType:   "hybrid",
			OpportunityType: "full-time",
			SalaryMin:       "1200000",
			SalaryMax:       "2400000",
			RequiredSkills:  "Go, PostgreSQL, Docker",
			MinExperience:   "2",
			MaxExperience:   "5",
			ApplicationLink: "https://acme.example.com/careers/backend",
		},
		{
			Title:             "Data Analyst Intern",
			CompanyName:       "Northwind Health",
			Locations:         "Pune",
			Industry:          "Healthcare",
			WorkplaceType:     "on-site",
			OpportunityType:   "internship",
			SalaryType:        "per month",
			SalaryMin:         "20000",
			RequiredSkills:    "SQL, Excel",
			ApplicationMethod: "email",
			ApplicationEmail:  "talent@northwind.example.com",
			ApplicationLink:   "mailto:talent@northwind.example.com",
		},
		{
			Title:           "Community Volunteer",
			CompanyName:     "Open Shelf Library",
			Locations:       "Remote",
			WorkplaceType:   "remote",
			OpportunityType: "volunteer",
			IsOpen:          &closed,
			ApplicationLink: "https://openshelf.example.org/volunteer",
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, form := range forms {
		job, err := client.CreateJob(ctx, form)
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Printf("Created job %d: %s at %s\n", job.ID, job.Title, job.CompanyName)
	}
}
