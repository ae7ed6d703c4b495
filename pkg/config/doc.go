/*
Package config loads splicerc job files.

	            +-------------+
	            |   Config    |
	            |  (splices)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Describes which files to splice and with which markers
- Keeps target paths out of code; every splice names its own path
- Resolves relative paths against the config file's directory

🔄 Flow:
1. Reads the config file
2. Picks a parser by extension (".splicerc" with no extension tries all)
3. Resolves relative paths
4. Validates and fills defaults

📝 Rules:
- path, start and end are required; markers must not be empty
- exactly one of replacement or replacement_file
- names default to the path and must be unique
- concurrency defaults to DefaultConcurrency

🔍 Example (YAML):

	concurrency: 2
	splices:
	  - name: pricing-dialog
	    path: src/pages/admin/ContentManagement.tsx
	    start: "  // Pricing Plan Edit Dialog"
	    end: "  // Navigation Edit Dialog"
	    replacement_file: snippets/pricing-dialog.tsx
*/
package config
