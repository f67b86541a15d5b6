// metin-cikar dumps the extracted plain text of a single export file.
// Debugging aid for checking what the classifier actually sees.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tkaraca/icra-analiz/internal/extract"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: metin-cikar <file.(txt|udf|pdf|zip)>")
		os.Exit(2)
	}

	docs, err := extract.ExtractFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "extract: %v\n", err)
		os.Exit(1)
	}
	for _, doc := range docs {
		fmt.Printf("==== %s (%s)\n", doc.Filename, doc.Format)
		fmt.Println(doc.RawText)
	}
}
