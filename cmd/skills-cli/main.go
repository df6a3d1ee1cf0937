package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"resumatch-utils/internal/analyzer"
	"resumatch-utils/internal/document"
	"resumatch-utils/internal/nlp"
	"resumatch-utils/internal/parser"
	"resumatch-utils/pkg/utils"
)

func main() {
	jobFile := pflag.String("job-file", "", "Path to a text file containing the job description")
	jobText := pflag.String("job-text", "", "Job description text")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <resume-path>\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Analyze resume skills against a job description and suggest certifications.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(1)
	}
	resumePath := pflag.Arg(0)

	if *jobFile == "" && *jobText == "" {
		fmt.Println("Error: Please provide either a job description file (--job-file) or job description text (--job-text).")
		os.Exit(1)
	}

	jobDescription := *jobText
	if *jobFile != "" {
		data, err := os.ReadFile(*jobFile)
		if err != nil {
			fmt.Printf("Error reading job description file: %v\n", err)
			os.Exit(1)
		}
		jobDescription = string(data)
	}

	started := time.Now()

	fmt.Println("Parsing resume...")
	text, err := document.ExtractText(resumePath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	phrases := nlp.NewProseExtractor()
	resume := parser.New(parser.Config{}, phrases).Parse(text)

	fmt.Printf("\nExtracted %d skills from resume:\n", len(resume.Skills))
	for _, skill := range resume.Skills {
		fmt.Printf("  • %s\n", skill)
	}

	fmt.Println("\nAnalyzing skills against job description...")
	results := analyzer.New(nil, nil, phrases).Analyze(resume.Skills, jobDescription)

	fmt.Printf("\nIdentified %d skills in job description:\n", len(results.JobSkills))
	for _, skill := range results.JobSkills {
		fmt.Printf("  • %s\n", skill)
	}

	fmt.Printf("\nIdentified %d missing skills:\n", len(results.MissingSkills))
	if len(results.MissingSkills) == 0 {
		fmt.Println("  No missing skills! Your resume already covers all the skills mentioned in the job description.")
	} else {
		for _, skill := range results.MissingSkills {
			fmt.Printf("  • %s\n", skill)
		}
	}

	fmt.Println("\nCertification recommendations for missing skills:")
	if len(results.CertificationSuggestions) == 0 {
		fmt.Println("  No specific certification recommendations for the identified missing skills.")
	}
	// Iterate in missing skill order so output is stable
	for _, skill := range results.MissingSkills {
		certifications, ok := results.CertificationSuggestions[skill]
		if !ok {
			continue
		}
		fmt.Printf("\nFor %s:\n", skill)
		for _, cert := range certifications {
			fmt.Printf("  • %s\n", cert.Name)
			fmt.Printf("    Provider: %s\n", cert.Provider)
			fmt.Printf("    URL: %s\n", cert.URL)
		}
	}

	fmt.Printf("\nDone in %s.\n", utils.FormatDuration(time.Since(started)))
}
