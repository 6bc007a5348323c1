package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// stdin is shared by every interactive prompt so buffered input carries
// over between questions.
var stdin = bufio.NewReader(os.Stdin)

// promptString asks a question and returns the trimmed answer, or the
// fallback when the answer is empty.
func promptString(label, fallback string) string {
	if fallback != "" {
		fmt.Printf("%s [%s]: ", label, fallback)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, err := stdin.ReadString('\n')
	if err != nil {
		return fallback
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}

// promptInt asks for a number, re-asking until the answer parses and
// lies within [min, max]. Empty input returns the fallback.
func promptInt(label string, fallback, min, max int) int {
	for {
		answer := promptString(label, strconv.Itoa(fallback))
		n, err := strconv.Atoi(answer)
		if err != nil || n < min || n > max {
			fmt.Printf("Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return n
	}
}

// promptYesNo asks a yes/no question. Empty input returns the fallback.
func promptYesNo(label string, fallback bool) bool {
	hint := "y/N"
	if fallback {
		hint = "Y/n"
	}
	fmt.Printf("%s [%s]: ", label, hint)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return fallback
	}
	line = strings.ToLower(strings.TrimSpace(line))
	if line == "" {
		return fallback
	}
	return strings.HasPrefix(line, "y")
}
