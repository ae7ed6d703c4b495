/*
Package splice replaces a marker-delimited block of text.

	document:  ....START.......END....
	                ^         ^
	                start     end
	result:    ....<replacement>END....

🎯 Purpose:
- Find the first occurrence of a start marker and an end marker
- Discard everything from the start marker up to (not including) the end marker
- Insert the replacement block in its place

📝 Rules:
- Markers are literal, case-sensitive substrings; only the first occurrence of
  each counts and the two searches are independent
- A missing marker is the only error (*NotFoundError); nothing is produced
- When the end marker comes first the same formula is applied and content is
  duplicated; there is no ordering check
- Identical markers give an empty span, so the splice is a pure insertion
- In ModeVerbatim the replacement should restate the start marker, otherwise
  the next run will not find it. ModeKeepStart re-emits the marker itself

The package performs no I/O and holds no state.

🔍 Example:

	out, err := splice.Splice(doc, "// BEGIN", "// END", "// BEGIN\nnew\n")
	if errors.Is(err, splice.ErrMarkerNotFound) {
		// report and do not write
	}
*/
package splice
