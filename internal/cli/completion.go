// Shell completion script generation for the ntmul CLI.
package cli

import (
	"fmt"
	"io"
)

// GenerateCompletion writes a completion script for the specified shell.
// Supported shells are bash, zsh, fish and powershell.
func GenerateCompletion(out io.Writer, shell string) error {
	switch shell {
	case "bash":
		return writeScript(out, bashCompletionScript)
	case "zsh":
		return writeScript(out, zshCompletionScript)
	case "fish":
		return writeScript(out, fishCompletionScript)
	case "powershell", "ps":
		return writeScript(out, powerShellCompletionScript)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
}

func writeScript(out io.Writer, script string) error {
	_, err := io.WriteString(out, script)
	return err
}

const bashCompletionScript = `# Bash completion script for ntmul
# Add this to your ~/.bashrc or ~/.bash_completion

_ntmul_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main options
    opts="--help -h --version -V --square --no-validate --verify -v --timeout --parallel-threshold --json --server --port --no-color --output -o --quiet -q --interactive --completion"

    case "${prev}" in
        --completion)
            COMPREPLY=( $(compgen -W "bash zsh fish powershell" -- "${cur}") )
            return 0
            ;;
        --output|-o)
            # File completion
            COMPREPLY=( $(compgen -f -- "${cur}") )
            return 0
            ;;
        --port)
            COMPREPLY=( $(compgen -W "8080 3000 5000 9000" -- "${cur}") )
            return 0
            ;;
        --timeout)
            COMPREPLY=( $(compgen -W "1m 5m 10m 30m 1h" -- "${cur}") )
            return 0
            ;;
        --parallel-threshold)
            COMPREPLY=( $(compgen -W "4096 8192 16384 32768 65536" -- "${cur}") )
            return 0
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _ntmul_completions ntmul
`

const zshCompletionScript = `#compdef ntmul

# Zsh completion script for ntmul
# Add this to your ~/.zshrc or place in $fpath

_ntmul() {
    _arguments -s \
        '(-h --help)'{-h,--help}'[Show help message]' \
        '(-V --version)'{-V,--version}'[Show version information]' \
        '--square[Square a single operand]' \
        '--no-validate[Skip operand validation]' \
        '--verify[Cross-check the result against math/big]' \
        '-v[Display the full value of the result]' \
        '--timeout[Maximum execution time]:duration:(1m 5m 10m 30m 1h)' \
        '--parallel-threshold[Minimum segment length for parallel recursion]:length:(4096 8192 16384 32768 65536)' \
        '--json[Output results in JSON format]' \
        '--server[Start in HTTP server mode]' \
        '--port[Server port]:port:(8080 3000 5000 9000)' \
        '--no-color[Disable colored output]' \
        '(-o --output)'{-o,--output}'[Output file path]:file:_files' \
        '(-q --quiet)'{-q,--quiet}'[Quiet mode for scripts]' \
        '--interactive[Read operand pairs from standard input]' \
        '--completion[Generate completion script]:shell:(bash zsh fish powershell)' \
        '*:operand:'
}

_ntmul "$@"
`

const fishCompletionScript = `# Fish completion script for ntmul
# Place in ~/.config/fish/completions/ntmul.fish

complete -c ntmul -l help -s h -d 'Show help message'
complete -c ntmul -l version -s V -d 'Show version information'
complete -c ntmul -l square -d 'Square a single operand'
complete -c ntmul -l no-validate -d 'Skip operand validation'
complete -c ntmul -l verify -d 'Cross-check the result against math/big'
complete -c ntmul -s v -d 'Display the full value of the result'
complete -c ntmul -l timeout -d 'Maximum execution time' -xa '1m 5m 10m 30m 1h'
complete -c ntmul -l parallel-threshold -d 'Minimum segment length for parallel recursion' -xa '4096 8192 16384 32768 65536'
complete -c ntmul -l json -d 'Output results in JSON format'
complete -c ntmul -l server -d 'Start in HTTP server mode'
complete -c ntmul -l port -d 'Server port' -xa '8080 3000 5000 9000'
complete -c ntmul -l no-color -d 'Disable colored output'
complete -c ntmul -l output -s o -d 'Output file path' -r
complete -c ntmul -l quiet -s q -d 'Quiet mode for scripts'
complete -c ntmul -l interactive -d 'Read operand pairs from standard input'
complete -c ntmul -l completion -d 'Generate completion script' -xa 'bash zsh fish powershell'
`

const powerShellCompletionScript = `# PowerShell completion script for ntmul
# Add this to your PowerShell profile

Register-ArgumentCompleter -Native -CommandName ntmul -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
        '--help', '--version', '--square', '--no-validate', '--verify', '-v',
        '--timeout', '--parallel-threshold', '--json', '--server', '--port',
        '--no-color', '--output', '--quiet', '--interactive', '--completion'
    )

    $options | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
    }
}
`
