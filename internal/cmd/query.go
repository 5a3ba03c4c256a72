package cmd

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query <filter...>",
	Short: "Run one command and print the matching words",
	Long: `Run a single command against the dictionary and print the matches,
one per line. The arguments are joined with spaces, so shell quoting is
only needed for characters the shell would interpret, such as < and >.

There is no previous command, so back-references are rejected.

Examples:
  wordfind query -d words.txt 0:ca =3
  wordfind query -d words.txt 'c*t' --limit 10
  wordfind query -d words.txt '>=8' 2:ing`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

var queryLimit int

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().IntVarP(&queryLimit, "limit", "n", 0, "Stop after N matches (0 for all)")
}

func runQuery(cmd *cobra.Command, args []string) error {
	env, err := prepare("")
	if err != nil {
		return err
	}
	defer env.Close()

	q, err := env.sess.Submit(strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	n := 0
	for w := range q.Words() {
		if _, err := out.WriteString(w.String()); err != nil {
			return err
		}
		if err := out.WriteByte('\n'); err != nil {
			return err
		}
		n++
		if queryLimit > 0 && n >= queryLimit {
			break
		}
	}
	return out.Flush()
}
