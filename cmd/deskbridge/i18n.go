// Package main provides localization for the deskbridge CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Desktop application backend exposing host file and system commands to a web front end.": "ホストのファイル操作とシステム情報をWebフロントエンドに公開するデスクトップアプリのバックエンド",

		// Version command
		"deskbridge version %s": "deskbridge バージョン %s",

		// Invoke command
		"--arg and --args-json cannot be combined": "--arg と --args-json は同時に指定できません",
		"--args-json must be a JSON object":        "--args-json にはJSONオブジェクトを指定してください",
	})
}
