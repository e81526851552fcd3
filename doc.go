// Package tableset generates synthetic tabular datasets: matched pairs of
// PDF and CSV files that encode the identical table, for use as test
// fixtures in table-extraction and document-parsing systems.
//
// # The sweep
//
// The usual entry point is [Sweep], which iterates a fixed grid of row
// counts (2..9), column counts (2..7) and filling modes (pseudo-Latin
// sentences or Unix-timestamp strings) and writes one artifact pair per
// combination into an output directory:
//
//	s := tableset.NewSweep()
//	if err := s.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// Each pair is named {rows}_{cols}_{True|False} with .pdf and .csv
// extensions; the flag token is True for sentence filling. A manifest.json
// with per-artifact SHA-256 checksums is written alongside.
//
// # Building blocks
//
// The pieces compose individually as well. Table data:
//
//	data := tableset.Generate(4, 3, tableset.FillSentences)
//	titles := tableset.Titles(3) // ["title0" "title1" "title2"]
//
// Markup rendering and compilation:
//
//	r := &tableset.LaTeXRenderer{Text: tableset.Lorem()}
//	src := r.Document(titles, data)
//
//	eng := tableset.NewLaTeXEngine()
//	pdf, err := eng.Compile(ctx, src)
//
// The LaTeX engine shells out to pdflatex, which must be installed. As an
// alternative backend, [ChromeEngine] renders the [HTMLRenderer] form of
// the same table through headless Chrome:
//
//	eng, err := tableset.NewChromeEngine(tableset.WithAutoDownload())
//	defer eng.Close()
//
// A [Result] gives flexible access to the compiled PDF bytes:
//
//	pdf.Bytes()
//	pdf.Reader()
//	pdf.WriteToFile("out.pdf", 0o644)
//
// # Caveats
//
// Cell content is substituted into the markup templates verbatim, with no
// escaping. The built-in generators only emit pseudo-Latin words and
// decimal digits, so this never produces malformed markup in practice, but
// a custom [TextSource] that emits markup metacharacters will.
package tableset
