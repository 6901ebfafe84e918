package main

import (
	"os"
	"reflect"
	"strings"

	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"
	"github.com/poiesic/talentsearch/core"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// If we're in the core subpackage, cd up to project root
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/poiesic/talentsearch/core"),
	)
	if err != nil {
		panic(err)
	}

	g.AddDefinedType(reflect.TypeFor[core.ID]())
	g.AddDefinedType(reflect.TypeFor[core.Facet]())

	// Unix micro timestamps
	opts := typeops.WithTimeUnit(typeops.Micro)
	err = g.AddStruct(reflect.TypeFor[core.Applicant](),
		structops.WithField(), // Id
		structops.WithField(), // SourceID
		structops.WithField(), // FullName
		structops.WithField(), // Email
		structops.WithField(), // JobTitle
		structops.WithField(), // CurrentCompany
		structops.WithField(), // PastCompanies
		structops.WithField(), // CurrentStage
		structops.WithField(opts), // DateApplied
		structops.WithField(), // YearsExperience
		structops.WithField(), // LongestTenure
		structops.WithField(), // EducationLevel
		structops.WithField(), // Location
		structops.WithField(), // ResumeText
		structops.WithField(), // SkillsText
		structops.WithField(), // TasksText
		structops.WithField(), // ResumeURL
		structops.WithField(), // ResumeVector
		structops.WithField(), // SkillsVector
		structops.WithField()) // TasksVector
	if err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	err = os.WriteFile("./core/records_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}
