package command

import (
	"fmt"
	"sort"
	"strings"
)

// usages maps each command to its one-line help, in the original plugin's
// docstring voice.
var usages = map[string]string{
	"roll":   "roll <dice> - simulates dice rolls. Example: 'roll 2d20-d5+4': 2 D20s, subtract 1D5, add 4",
	"dice":   "dice <dice> - simulates dice rolls. Example: 'dice 2d20-d5+4': 2 D20s, subtract 1D5, add 4",
	"choose": "choose <choice1>, [choice2], [choice3] - randomly picks one of the given choices",
	"coin":   "coin [amount] - flips [amount] coins",
	"flip":   "flip [amount] - flips [amount] coins",
}

// Usage returns the help line for a single command, or the command list
// for an unknown topic.
func Usage(name string) string {
	if usage, ok := usages[strings.ToLower(name)]; ok {
		return usage
	}
	return commandList()
}

func helpMessages(topic string) []string {
	if topic != "" {
		return []string{Usage(topic)}
	}
	return []string{commandList()}
}

func commandList() string {
	names := make([]string, 0, len(usages))
	for name := range usages {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("Available commands: %s. Try 'help <command>'.", strings.Join(names, ", "))
}
