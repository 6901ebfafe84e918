// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slice6b6cbRoW2u69R8F3Σ39yΔQΞΞ = ord.NewSliceSer[string](ord.String)
	slicenhOΔS3DEGeΣDjkZHV0hKvAΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var FacetMUS = facetMUS{}

type facetMUS struct{}

func (s facetMUS) Marshal(v Facet, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s facetMUS) Unmarshal(bs []byte) (v Facet, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Facet(tmp)
	return
}

func (s facetMUS) Size(v Facet) (size int) {
	return varint.Int.Size(int(v))
}

func (s facetMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var ApplicantMUS = applicantMUS{}

type applicantMUS struct{}

func (s applicantMUS) Marshal(v Applicant, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.SourceID, bs[n:])
	n += ord.String.Marshal(v.FullName, bs[n:])
	n += ord.String.Marshal(v.Email, bs[n:])
	n += ord.String.Marshal(v.JobTitle, bs[n:])
	n += ord.String.Marshal(v.CurrentCompany, bs[n:])
	n += slice6b6cbRoW2u69R8F3Σ39yΔQΞΞ.Marshal(v.PastCompanies, bs[n:])
	n += ord.String.Marshal(v.CurrentStage, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.DateApplied, bs[n:])
	n += varint.Float64.Marshal(v.YearsExperience, bs[n:])
	n += varint.Float64.Marshal(v.LongestTenure, bs[n:])
	n += ord.String.Marshal(v.EducationLevel, bs[n:])
	n += ord.String.Marshal(v.Location, bs[n:])
	n += ord.String.Marshal(v.ResumeText, bs[n:])
	n += ord.String.Marshal(v.SkillsText, bs[n:])
	n += ord.String.Marshal(v.TasksText, bs[n:])
	n += ord.String.Marshal(v.ResumeURL, bs[n:])
	n += slicenhOΔS3DEGeΣDjkZHV0hKvAΞΞ.Marshal(v.ResumeVector, bs[n:])
	n += slicenhOΔS3DEGeΣDjkZHV0hKvAΞΞ.Marshal(v.SkillsVector, bs[n:])
	return n + slicenhOΔS3DEGeΣDjkZHV0hKvAΞΞ.Marshal(v.TasksVector, bs[n:])
}

func (s applicantMUS) Unmarshal(bs []byte) (v Applicant, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.SourceID, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FullName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Email, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.JobTitle, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CurrentCompany, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PastCompanies, n1, err = slice6b6cbRoW2u69R8F3Σ39yΔQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CurrentStage, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DateApplied, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.YearsExperience, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.LongestTenure, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.EducationLevel, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Location, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ResumeText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SkillsText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TasksText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ResumeURL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ResumeVector, n1, err = slicenhOΔS3DEGeΣDjkZHV0hKvAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SkillsVector, n1, err = slicenhOΔS3DEGeΣDjkZHV0hKvAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TasksVector, n1, err = slicenhOΔS3DEGeΣDjkZHV0hKvAΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s applicantMUS) Size(v Applicant) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.SourceID)
	size += ord.String.Size(v.FullName)
	size += ord.String.Size(v.Email)
	size += ord.String.Size(v.JobTitle)
	size += ord.String.Size(v.CurrentCompany)
	size += slice6b6cbRoW2u69R8F3Σ39yΔQΞΞ.Size(v.PastCompanies)
	size += ord.String.Size(v.CurrentStage)
	size += raw.TimeUnixMicro.Size(v.DateApplied)
	size += varint.Float64.Size(v.YearsExperience)
	size += varint.Float64.Size(v.LongestTenure)
	size += ord.String.Size(v.EducationLevel)
	size += ord.String.Size(v.Location)
	size += ord.String.Size(v.ResumeText)
	size += ord.String.Size(v.SkillsText)
	size += ord.String.Size(v.TasksText)
	size += ord.String.Size(v.ResumeURL)
	size += slicenhOΔS3DEGeΣDjkZHV0hKvAΞΞ.Size(v.ResumeVector)
	size += slicenhOΔS3DEGeΣDjkZHV0hKvAΞΞ.Size(v.SkillsVector)
	return size + slicenhOΔS3DEGeΣDjkZHV0hKvAΞΞ.Size(v.TasksVector)
}

func (s applicantMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice6b6cbRoW2u69R8F3Σ39yΔQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicenhOΔS3DEGeΣDjkZHV0hKvAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicenhOΔS3DEGeΣDjkZHV0hKvAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicenhOΔS3DEGeΣDjkZHV0hKvAΞΞ.Skip(bs[n:])
	n += n1
	return
}
