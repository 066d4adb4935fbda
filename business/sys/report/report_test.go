package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ardanlabs/blocksizing/business/core/blocksize"
	"github.com/ardanlabs/blocksizing/business/sys/report"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestText(t *testing.T) {
	t.Log("Given the need to print a report for people.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen handling the reference bundle.", testID)
		{
			rpt, err := blocksize.Evaluate(blocksize.Reference())
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to evaluate the bundle: %s", failed, testID, err)
			}

			var buf bytes.Buffer
			if err := report.Write(&buf, report.FormatText, rpt); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to write the report: %s", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to write the report.", success, testID)

			lines := []string{
				"Condition 1: Throughput (Transaction per second) = 5",
				"Condition 2: BSB = 558",
				"Condition 3: BST = 5",
				"Condition 4: (BSB <= LS): true",
				"Condition 6: (1 <= Σxi <= n): true",
				"Condition 8: (M(1 - yk) >= (STk - 1)): [false, false]",
				"Condition 9: (Σyk = m): true",
				"Condition 10: (xi ∈ {0, 1}): true",
				"Condition 11: (yk ∈ {0, 1}): true",
				"Condition 12: (STk ∈ R+): true",
				"Condition 13: (STk - max{BST/Perfk, BSB/BWk} * yk ≤ 0): [false, false]",
				"Condition 14: (Σyk ≥ PCN * m): true",
				"Condition 16: (BSB - max(Si) * xi ≤ LS): not evaluated",
				"Note: yk has 3 entries, only the first 2 are used",
			}

			out := buf.String()
			for _, line := range lines {
				if !strings.Contains(out, line+"\n") {
					t.Logf("\t%s\tTest %d:\tgot:\n%s", failed, testID, out)
					t.Fatalf("\t%s\tTest %d:\tShould contain the line %q.", failed, testID, line)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould contain the expected lines.", success, testID)

			if strings.Index(out, "Condition 1:") > strings.Index(out, "Condition 17:") {
				t.Fatalf("\t%s\tTest %d:\tShould print the constraints in order.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould print the constraints in order.", success, testID)
		}
	}
}

func TestJSON(t *testing.T) {
	t.Log("Given the need to print a report for other programs.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen handling the reference bundle.", testID)
		{
			rpt, err := blocksize.Evaluate(blocksize.Reference())
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to evaluate the bundle: %s", failed, testID, err)
			}

			var buf bytes.Buffer
			if err := report.Write(&buf, "JSON", rpt); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to write the report: %s", failed, testID, err)
			}

			var doc struct {
				Bundle   string  `json:"bundle"`
				BSB      float64 `json:"BSB"`
				Outcomes []struct {
					ID   int    `json:"id"`
					Kind string `json:"kind"`
				} `json:"outcomes"`
			}
			if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to decode the report: %s", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to decode the report.", success, testID)

			if doc.Bundle != rpt.Bundle || doc.BSB != 558 || len(doc.Outcomes) != 17 {
				t.Fatalf("\t%s\tTest %d:\tShould carry the bundle, BSB and 17 outcomes: %+v", failed, testID, doc)
			}
			if doc.Outcomes[3].Kind != "predicate" || doc.Outcomes[6].Kind != "values" {
				t.Fatalf("\t%s\tTest %d:\tShould name the outcome kinds, got %q and %q.", failed, testID, doc.Outcomes[3].Kind, doc.Outcomes[6].Kind)
			}
			t.Logf("\t%s\tTest %d:\tShould carry the report values.", success, testID)
		}
	}
}

func TestJSONZeroValues(t *testing.T) {
	t.Log("Given the need to keep zero results in a report for other programs.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen handling an empty block.", testID)
		{
			p := blocksize.Reference()
			p.Xi = []float64{0, 0, 0, 0, 0}

			rpt, err := blocksize.Evaluate(p)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to evaluate the bundle: %s", failed, testID, err)
			}

			var buf bytes.Buffer
			if err := report.JSON(&buf, rpt); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to write the report: %s", failed, testID, err)
			}

			var doc struct {
				Outcomes []map[string]any `json:"outcomes"`
			}
			if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to decode the report: %s", failed, testID, err)
			}

			for _, i := range []int{0, 1, 2} {
				v, exists := doc.Outcomes[i]["value"]
				if !exists || v != float64(0) {
					t.Fatalf("\t%s\tTest %d:\tShould carry a zero value for outcome %d, got %v.", failed, testID, i+1, doc.Outcomes[i])
				}
			}
			t.Logf("\t%s\tTest %d:\tShould carry zero values for outcomes (1) through (3).", success, testID)

			if v, exists := doc.Outcomes[1]["integer"]; !exists || v != float64(0) {
				t.Fatalf("\t%s\tTest %d:\tShould carry the exact zero BSB, got %v.", failed, testID, doc.Outcomes[1])
			}
			t.Logf("\t%s\tTest %d:\tShould carry the exact zero BSB.", success, testID)
		}
	}
}

func TestTextExactBlockSize(t *testing.T) {
	t.Log("Given the need to print block sizes above 2^53.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen the sizes do not fit a float exactly.", testID)
		{
			p := blocksize.Reference()
			p.Si = []int64{9007199254740993, 1, 1, 1, 1}

			rpt, err := blocksize.Evaluate(p)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to evaluate the bundle: %s", failed, testID, err)
			}

			var buf bytes.Buffer
			if err := report.Text(&buf, rpt); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to write the report: %s", failed, testID, err)
			}

			if line := "Condition 2: BSB = 9007199254740997\n"; !strings.Contains(buf.String(), line) {
				t.Logf("\t%s\tTest %d:\tgot:\n%s", failed, testID, buf.String())
				t.Fatalf("\t%s\tTest %d:\tShould contain the line %q.", failed, testID, line)
			}
			t.Logf("\t%s\tTest %d:\tShould print the exact block size.", success, testID)
		}
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	t.Log("Given the need to reject unknown formats.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen asking for xml.", testID)
		{
			if err := report.Write(&bytes.Buffer{}, "xml", blocksize.Report{}); err == nil {
				t.Fatalf("\t%s\tTest %d:\tShould get an error.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould get an error.", success, testID)
		}
	}
}

func TestDescribe(t *testing.T) {
	t.Log("Given the need to describe the model.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen printing the tables.", testID)
		{
			var buf bytes.Buffer
			if err := report.Describe(&buf); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to describe the model: %s", failed, testID, err)
			}

			out := buf.String()
			for _, s := range []string{
				"Table 1: Models Parameters/Variables and Their Description",
				"BWk: The bandwidth of CNk\n",
				"T-VSk: Time of ... CNk, the number of transactions that can store in a second\n",
				"T-DBk: Time of ... CNk, the number of transactions that can store in a second\n",
				"STk: The storing time of block by CNk\n",
				"Constraints and Equations (1 to 17)\n",
				"(17): BST - xi ≤ LN\n",
			} {
				if !strings.Contains(out, s) {
					t.Fatalf("\t%s\tTest %d:\tShould contain %q.", failed, testID, s)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould print every table.", success, testID)
		}
	}
}
