package reporting

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yasmramos/veld-bench/internal/analysis"
)

// JUnit XML schema types

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one analysis run.
type JUnitTestSuite struct {
	XMLName   xml.Name        `xml:"testsuite"`
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Skipped   int             `xml:"skipped,attr"`
	Timestamp string          `xml:"timestamp,attr"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one validation category.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Skipped   *JUnitSkipped `xml:"skipped,omitempty"`
}

// JUnitFailure represents a missed performance target.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// JUnitSkipped marks a category that produced no data.
type JUnitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

const junitSuiteName = "veld-strategic-validation"

// ConvertToJUnit maps a verdict set to JUnit XML: one testcase per
// category, failures for categories that missed their target,
// skipped for categories without data.
func ConvertToJUnit(set analysis.Set, now time.Time) *JUnitTestSuites {
	suite := JUnitTestSuite{
		Name:      junitSuiteName,
		Tests:     set.Total(),
		Failures:  set.Failures(),
		Timestamp: now.Format(time.RFC3339),
	}

	for _, cat := range analysis.Categories {
		tc := JUnitTestCase{
			Name:      string(cat),
			Classname: junitSuiteName,
		}
		v := set[cat]
		switch {
		case v == nil:
			suite.Skipped++
			tc.Skipped = &JUnitSkipped{Message: "no benchmark data"}
		case !v.Passed:
			tc.Failure = buildFailure(v)
		}
		suite.TestCases = append(suite.TestCases, tc)
	}

	return &JUnitTestSuites{
		Tests:      suite.Tests,
		Failures:   suite.Failures,
		TestSuites: []JUnitTestSuite{suite},
	}
}

func buildFailure(v *analysis.Verdict) *JUnitFailure {
	var body strings.Builder
	for _, f := range v.Fields {
		fmt.Fprintf(&body, "%s: %s\n", f.Label, f.Value)
	}
	if v.Analysis != "" {
		body.WriteString(v.Analysis + "\n")
	}
	return &JUnitFailure{
		Message: fmt.Sprintf("%s: %s (%s)", v.Category, v.Status(), v.Headline),
		Type:    "ThresholdFailure",
		Body:    body.String(),
	}
}

// WriteJUnit writes the JUnit XML report to the specified file path.
func WriteJUnit(set analysis.Set, path string, now time.Time) error {
	suites := ConvertToJUnit(set, now)

	data, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JUnit XML: %w", err)
	}

	output := append([]byte(xml.Header), data...)
	return os.WriteFile(path, output, 0o644)
}
