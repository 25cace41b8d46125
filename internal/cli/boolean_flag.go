package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	booleanFlagTypeName         = "bool"
	booleanFlagTrueLiteral      = "true"
	booleanFlagAcceptedValues   = "true, false, yes, no, on, off, 1, 0"
	errorInvalidBooleanFormat   = "invalid boolean value %q for --%s; accepted values: %s"
	argumentTerminator          = "--"
	longFlagPrefix              = "--"
	flagValueSeparator          = "="
	normalizedBooleanFlagFormat = "--%s=%s"
)

var booleanLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// parseBooleanLiteral interprets the accepted spellings of a boolean flag value.
func parseBooleanLiteral(input string) (bool, bool) {
	parsed, known := booleanLiterals[strings.ToLower(strings.TrimSpace(input))]
	return parsed, known
}

// lenientBoolean is a pflag.Value accepting yes/no/on/off besides true/false.
type lenientBoolean struct {
	target   *bool
	flagName string
}

func (value *lenientBoolean) Set(input string) error {
	if strings.TrimSpace(input) == "" {
		*value.target = true
		return nil
	}
	parsed, known := parseBooleanLiteral(input)
	if !known {
		return fmt.Errorf(errorInvalidBooleanFormat, input, value.flagName, booleanFlagAcceptedValues)
	}
	*value.target = parsed
	return nil
}

func (value *lenientBoolean) String() string {
	if value.target == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.target)
}

func (value *lenientBoolean) Type() string {
	return booleanFlagTypeName
}

// registerBooleanFlag adds a lenient boolean flag that may be given bare, with "=value",
// or followed by a separate literal argument.
func registerBooleanFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	*target = defaultValue
	flagSet.Var(&lenientBoolean{target: target, flagName: name}, name, usage)
	registered := flagSet.Lookup(name)
	registered.DefValue = strconv.FormatBool(defaultValue)
	registered.NoOptDefVal = booleanFlagTrueLiteral
}

// normalizeBooleanFlagArguments joins "--flag literal" pairs into "--flag=literal" for the
// boolean flags known to command and its children. A following argument that is not a
// boolean literal, such as a project path, is left positional.
func normalizeBooleanFlagArguments(command *cobra.Command, arguments []string) []string {
	booleanFlags := map[string]struct{}{}
	collectBooleanFlagNames(command, booleanFlags)
	if len(booleanFlags) == 0 {
		return arguments
	}

	normalized := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		current := arguments[index]
		if current == argumentTerminator {
			normalized = append(normalized, arguments[index:]...)
			break
		}
		if strings.HasPrefix(current, longFlagPrefix) && !strings.Contains(current, flagValueSeparator) && index+1 < len(arguments) {
			flagName := strings.TrimPrefix(current, longFlagPrefix)
			next := arguments[index+1]
			if _, isBoolean := booleanFlags[flagName]; isBoolean {
				if _, known := parseBooleanLiteral(next); known {
					normalized = append(normalized, fmt.Sprintf(normalizedBooleanFlagFormat, flagName, next))
					index++
					continue
				}
			}
		}
		normalized = append(normalized, current)
	}
	return normalized
}

func collectBooleanFlagNames(command *cobra.Command, target map[string]struct{}) {
	collect := func(flag *pflag.Flag) {
		if flag.Value.Type() == booleanFlagTypeName {
			target[flag.Name] = struct{}{}
		}
	}
	command.PersistentFlags().VisitAll(collect)
	command.Flags().VisitAll(collect)
	for _, child := range command.Commands() {
		collectBooleanFlagNames(child, target)
	}
}
