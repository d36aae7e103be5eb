// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// ScoreWeights records the weighting policy used to build an overall score.
type ScoreWeights struct {
	Semantic   float64 `json:"semantic"`
	SkillMatch float64 `json:"skill_match"`
}

// AnalysisReport is the result of matching a resume against a job description.
// JDSkillPriority adds to each job skill frequency the occurrences found near requirement markers.
// Scores are on a 0-100 scale.
type AnalysisReport struct {
	OverallScore       float64             `json:"overall_score"`
	SemanticSimilarity float64             `json:"semantic_similarity"`
	SkillMatchScore    float64             `json:"skill_match_score"`
	ResumeSkills       []string            `json:"resume_skills"`
	JobSkills          []string            `json:"job_skills"`
	MissingSkills      []string            `json:"missing_skills"`
	ResumeKeywordFreq  map[string]int      `json:"resume_keyword_freq"`
	JDKeywordFreq      map[string]int      `json:"jd_keyword_freq"`
	JDSkillPriority    map[string]int      `json:"jd_skill_priority"`
	Suggestions        []string            `json:"suggestions"`
	MatchedSkills      []string            `json:"matched_skills"`
	ExtraSkills        []string            `json:"extra_skills"`
	MissingByCategory  map[string][]string `json:"missing_by_category,omitempty"`
	Weights            ScoreWeights        `json:"weights"`
	GeneratedAt        time.Time           `json:"generated_at"`
}

// ComparisonReport is the result of comparing two documents with no requirement side.
type ComparisonReport struct {
	SimilarityScore float64  `json:"similarity_score"`
	File1Skills     []string `json:"file1_skills"`
	File2Skills     []string `json:"file2_skills"`
	CommonSkills    []string `json:"common_skills"`
	UniqueToFile1   []string `json:"unique_to_file1"`
	UniqueToFile2   []string `json:"unique_to_file2"`
}

// PairwiseComparison is one cell of a multi-document comparison.
type PairwiseComparison struct {
	File1ID string           `json:"file1_id"`
	File2ID string           `json:"file2_id"`
	Report  ComparisonReport `json:"report"`
}

// ComparisonMatrix holds the pairwise comparisons of every unordered document pair.
type ComparisonMatrix struct {
	DocumentIDs []string             `json:"document_ids"`
	Pairs       []PairwiseComparison `json:"pairs"`
}
