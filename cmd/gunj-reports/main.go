package main

import "github.com/gunjanjp/gunj-reports/pkg/cli"

func main() {
	cli.Execute()
}
