package parser

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/plotstruct-go/pkg/plotstruct/models"
	"github.com/xuri/excelize/v2"
)

const (
	nsMain  = `xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`
	nsRels  = `xmlns="http://schemas.openxmlformats.org/package/2006/relationships"`
	relBase = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"
	nsChart = `xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`
)

var barChartXML = `<c:chartSpace ` + nsChart + `><c:chart>
<c:title><c:tx><c:rich><a:p><a:r><a:t>Sales by </a:t></a:r><a:r><a:t>region</a:t></a:r></a:p></c:rich></c:tx></c:title>
<c:plotArea>
  <c:barChart>
    <c:barDir val="bar"/>
    <c:ser>
      <c:tx><c:strRef><c:f>Data!$B$1</c:f><c:strCache><c:pt idx="0"><c:v>2024</c:v></c:pt></c:strCache></c:strRef></c:tx>
      <c:dLbls><c:dLbl><c:tx><c:rich><a:p><a:r><a:t>label</a:t></a:r></a:p></c:rich></c:tx></c:dLbl></c:dLbls>
      <c:cat><c:strRef><c:f>Data!$A$2:$A$4</c:f></c:strRef></c:cat>
      <c:val><c:numRef><c:f>Data!$B$2:$B$4</c:f></c:numRef></c:val>
    </c:ser>
  </c:barChart>
  <c:catAx><c:axPos val="l"/><c:title><c:tx><c:rich><a:p><a:r><a:t>Region</a:t></a:r></a:p></c:rich></c:tx></c:title></c:catAx>
  <c:valAx><c:axPos val="b"/><c:title><c:tx><c:rich><a:p><a:r><a:t>Units</a:t></a:r></a:p></c:rich></c:tx></c:title></c:valAx>
</c:plotArea></c:chart></c:chartSpace>`

func writeZip(t *testing.T, parts map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.xlsx")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	zw := zip.NewWriter(out)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return path
}

func TestExtractCharts_Package(t *testing.T) {
	path := writeZip(t, map[string]string{
		"xl/workbook.xml": `<workbook ` + nsMain + `><sheets>
			<sheet name="Data" sheetId="1" r:id="rId1"/>
			<sheet name="Empty" sheetId="2" r:id="rId2"/>
		</sheets></workbook>`,
		"xl/_rels/workbook.xml.rels": `<Relationships ` + nsRels + `>
			<Relationship Id="rId1" Type="` + relBase + `worksheet" Target="worksheets/sheet1.xml"/>
			<Relationship Id="rId2" Type="` + relBase + `worksheet" Target="/xl/worksheets/sheet2.xml"/>
			<Relationship Id="rId3" Type="` + relBase + `styles" Target="styles.xml"/>
		</Relationships>`,
		"xl/worksheets/_rels/sheet1.xml.rels": `<Relationships ` + nsRels + `>
			<Relationship Id="rId1" Type="` + relBase + `drawing" Target="../drawings/drawing1.xml"/>
		</Relationships>`,
		"xl/drawings/drawing1.xml": `<xdr:wsDr xmlns:xdr="http://schemas.openxmlformats.org/drawingml/2006/spreadsheetDrawing" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
			<xdr:twoCellAnchor><xdr:graphicFrame>
				<xdr:nvGraphicFramePr><xdr:cNvPr id="2" name="Chart 1"/></xdr:nvGraphicFramePr>
				<xdr:xfrm><a:off x="0" y="0"/><a:ext cx="4572000" cy="2743200"/></xdr:xfrm>
				<a:graphic><a:graphicData><c:chart xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" r:id="rId1"/></a:graphicData></a:graphic>
			</xdr:graphicFrame></xdr:twoCellAnchor>
			<xdr:twoCellAnchor><xdr:sp><xdr:nvSpPr><xdr:cNvPr id="3" name="Box"/></xdr:nvSpPr></xdr:sp></xdr:twoCellAnchor>
		</xdr:wsDr>`,
		"xl/drawings/_rels/drawing1.xml.rels": `<Relationships ` + nsRels + `>
			<Relationship Id="rId1" Type="` + relBase + `chart" Target="../charts/chart1.xml"/>
		</Relationships>`,
		"xl/charts/chart1.xml": barChartXML,
	})

	charts, err := ExtractCharts(path)
	if err != nil {
		t.Fatalf("ExtractCharts failed: %v", err)
	}
	if len(charts) != 1 {
		t.Fatalf("Expected charts for 1 sheet, got %d", len(charts))
	}
	hints := charts["Data"]
	if len(hints) != 1 {
		t.Fatalf("Expected 1 chart, got %d", len(hints))
	}

	h := hints[0]
	checks := []struct {
		field, got, want string
	}{
		{"Name", h.Name, "Chart 1"},
		{"Kind", string(h.Kind), string(models.KindBar)},
		{"SourceType", h.SourceType, "barChart"},
		{"Title", h.Title, "Sales by region"},
		{"XAxisTitle", h.XAxisTitle, "Region"},
		{"YAxisTitle", h.YAxisTitle, "Units"},
		{"Orientation", h.Orientation, "h"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, expected %q", c.field, c.got, c.want)
		}
	}
	if h.W != 480 || h.H != 288 {
		t.Errorf("size = %dx%d, expected 480x288", h.W, h.H)
	}

	if len(h.Series) != 1 {
		t.Fatalf("Expected 1 series, got %d", len(h.Series))
	}
	want := models.ChartSeries{Name: "2024", NameRange: "Data!$B$1", XRange: "Data!$A$2:$A$4", YRange: "Data!$B$2:$B$4"}
	if h.Series[0] != want {
		t.Errorf("series = %+v, expected %+v", h.Series[0], want)
	}
}

func TestExtractCharts_NotZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.xlsx")
	if err := os.WriteFile(path, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ExtractCharts(path); err == nil {
		t.Error("Expected error for a file that is not a zip package")
	}
}

func TestParseChart_Scatter(t *testing.T) {
	data := `<c:chartSpace ` + nsChart + `><c:chart><c:plotArea>
		<c:scatterChart><c:ser>
			<c:xVal><c:numRef><c:f>S!$A$2:$A$9</c:f></c:numRef></c:xVal>
			<c:yVal><c:numRef><c:f>S!$B$2:$B$9</c:f></c:numRef></c:yVal>
		</c:ser></c:scatterChart>
		<c:lineChart><c:ser/></c:lineChart>
		<c:valAx><c:axPos val="l"/><c:title><c:tx><c:strRef><c:f>S!$B$1</c:f><c:strCache><c:pt idx="0"><c:v>Weight</c:v></c:pt></c:strCache></c:strRef></c:tx></c:title></c:valAx>
		<c:valAx><c:axPos val="b"/><c:title><c:tx><c:rich><a:p><a:r><a:t>Height</a:t></a:r></a:p></c:rich></c:tx></c:title></c:valAx>
	</c:plotArea></c:chart></c:chartSpace>`

	h := parseChart([]byte(data))

	if h.Kind != models.KindScatter || h.SourceType != "scatterChart" {
		t.Errorf("kind = %q (%s), expected scatter", h.Kind, h.SourceType)
	}
	if h.XAxisTitle != "Height" || h.YAxisTitle != "Weight" {
		t.Errorf("axis titles = %q / %q", h.XAxisTitle, h.YAxisTitle)
	}
	if h.Orientation != "" || h.Title != "" {
		t.Errorf("unexpected orientation %q or title %q", h.Orientation, h.Title)
	}
	if len(h.Series) != 1 || h.Series[0].XRange != "S!$A$2:$A$9" || h.Series[0].YRange != "S!$B$2:$B$9" {
		t.Errorf("series = %+v", h.Series)
	}
}

func TestParseChart_Unsupported(t *testing.T) {
	h := parseChart([]byte(`<c:chartSpace ` + nsChart + `><c:chart><c:plotArea><c:radarChart/></c:plotArea></c:chart></c:chartSpace>`))
	if h.SourceType != "radarChart" || h.Kind != "" {
		t.Errorf("hint = %+v, expected radarChart without kind", h)
	}
}

func TestExtractCharts_Excelize(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{nil, "Apple", "Orange", "Pear"},
		{"Small", 2, 3, 3},
		{"Normal", 5, 2, 4},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	if err := f.AddChart("Sheet1", "E1", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{Name: "Sheet1!$A$2", Categories: "Sheet1!$B$1:$D$1", Values: "Sheet1!$B$2:$D$2"},
			{Name: "Sheet1!$A$3", Categories: "Sheet1!$B$1:$D$1", Values: "Sheet1!$B$3:$D$3"},
		},
		Title: []excelize.RichTextRun{{Text: "Fruit"}},
	}); err != nil {
		t.Fatalf("AddChart failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "chart.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	charts, err := ExtractCharts(path)
	if err != nil {
		t.Fatalf("ExtractCharts failed: %v", err)
	}
	hints := charts["Sheet1"]
	if len(hints) != 1 {
		t.Fatalf("Expected 1 chart on Sheet1, got %d", len(hints))
	}
	if hints[0].Kind != models.KindBar || hints[0].Orientation != "v" {
		t.Errorf("kind = %q orientation = %q, expected vertical bar", hints[0].Kind, hints[0].Orientation)
	}
	if hints[0].Title != "Fruit" {
		t.Errorf("title = %q, expected Fruit", hints[0].Title)
	}
	if len(hints[0].Series) != 2 {
		t.Errorf("Expected 2 series, got %d", len(hints[0].Series))
	}
}

func TestResolvePart(t *testing.T) {
	tests := []struct {
		source, target, want string
	}{
		{"xl/workbook.xml", "worksheets/sheet1.xml", "xl/worksheets/sheet1.xml"},
		{"xl/worksheets/sheet1.xml", "../drawings/drawing1.xml", "xl/drawings/drawing1.xml"},
		{"xl/workbook.xml", "/xl/worksheets/sheet2.xml", "xl/worksheets/sheet2.xml"},
	}
	for _, tt := range tests {
		if got := resolvePart(tt.source, tt.target); got != tt.want {
			t.Errorf("resolvePart(%q, %q) = %q, expected %q", tt.source, tt.target, got, tt.want)
		}
	}
	if got := relsPath("xl/drawings/drawing1.xml"); got != "xl/drawings/_rels/drawing1.xml.rels" {
		t.Errorf("relsPath = %q", got)
	}
}
