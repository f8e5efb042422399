package render

import "strings"

// htmlTemplate is the fixed document shell for HTML reports. The stylesheet
// only covers what reports actually produce: headings, tables, lists.
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>SuperMind Report</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 2rem auto; max-width: 52rem; line-height: 1.6; color: #1f2937; }
h1, h2, h3 { color: #312e81; }
table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
th, td { border: 1px solid #d1d5db; padding: 0.5rem 0.75rem; text-align: left; }
th { background: #eef2ff; font-weight: 700; }
ul { padding-left: 1.5rem; }
</style>
</head>
<body>
<div class="report">
__CONTENT__
</div>
</body>
</html>
`

// renderHTML wraps the cleaned prose in the fixed document template.
func renderHTML(cleaned string) string {
	return strings.Replace(htmlTemplate, "__CONTENT__", cleaned, 1)
}
