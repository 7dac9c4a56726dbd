package mcpserver

// Tool descriptions with interpretation guidance for LLMs.
// Each description explains what the tool does, when to use it and how to
// read the returned metrics.

func describeAnalyzeFile() string {
	return `Computes source-code metrics for one file: a tree of nested spaces
(file, classes, functions, closures), each carrying its own and rolled-up
metric values.

USE WHEN:
- Reviewing a single file's complexity before or after a change
- Locating the hardest functions inside a known file
- Checking maintainability of a file flagged elsewhere

INTERPRETING RESULTS:
- Each space reports its own value plus sum/average/max across the
  functions nested beneath it
- cyclomatic.value > 10: many code paths, consider splitting
- cognitive.value > 15: hard to follow; nesting drives this score up fast
- mi.mi_visual_studio < 20: low maintainability (scale 0-100)
- halstead volume/difficulty/effort estimate mental load
- loc: sloc (physical), ploc (code lines), lloc (statements), cloc
  (comments), blank

METRICS RETURNED:
- Per space: cyclomatic, cognitive, halstead, abc, loc, nom, npm, npa,
  nargs, nexits, mi, wmc
- Spaces nest in source order with line ranges`
}

func describeAnalyzeSource() string {
	return `Computes source-code metrics for an in-memory buffer without
touching disk. Same result shape as analyze_file.

USE WHEN:
- Scoring generated or edited code before writing it out
- Analyzing snippets from a conversation or editor buffer
- Comparing metric impact of alternative implementations

NOTES:
- language is required: go, python, rust, c, cpp, csharp, java,
  javascript, typescript, tsx, ruby
- virtual_path only labels the result; it is never opened`
}

func describeAnalyzePath() string {
	return `Analyzes every supported source file under a directory and
returns per-file space trees plus a project summary.

USE WHEN:
- Surveying an unfamiliar codebase's complexity profile
- Finding the worst functions across a whole project
- Tracking aggregate metrics over time

INTERPRETING RESULTS:
- summary: file/space/function counts, total sloc, mean/median/p95/max
  cyclomatic complexity across functions, mean maintainability
- files: one space tree per analyzed file
- Respects .gitignore and the standard exclusions (vendor, node_modules)`
}

func describeListLanguages() string {
	return `Lists the languages the engine can analyze. Use it to check
support before calling analyze_source with an unusual language name.`
}
