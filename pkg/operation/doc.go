/*
Package operation applies configured splices to documents.

	+-----------+     +----------+     +-----------+
	|  Reader   | --> |  Splice  | --> |  Writer   |
	| (document)|     | (pure fn)|     | (document)|
	+-----------+     +----------+     +-----------+

🎯 Purpose:
- Reads each target document once per target
- Applies the splice with the target's mode
- Writes back only when the splice succeeded and changed something

🔄 Flow:
1. Plan expands config splices into targets (globs, replacement files)
2. Run groups targets by document
3. Each group runs in order, groups run concurrently (errgroup)
4. Every target produces a Report, logged as one console line

⚡ Outcomes:
- spliced: document rewritten
- unchanged: replacement reproduced the original
- dry-run: change computed, write skipped
- not found: a marker is missing, writer never called
- failed: read or write error

🚪 Exit codes (ExitCode):
- 0 success
- 1 usage or config error
- 2 marker(s) not found
- 3 i/o failure, wins over 2

🔍 Example:

	op, err := operation.New(operation.Options{Store: document.NewStore(), Concurrency: 4})
	targets, err := operation.Plan(ctx, cfg.Splices, store)
	res, err := op.Run(ctx, targets)
	os.Exit(operation.ExitCode(res.Err()))
*/
package operation
