package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Application lifecycle (info)
		"Starting %s with %d commands":  "%s を %d 個のコマンドで起動中",
		"Serving front end from %s":     "フロントエンドを %s から配信中",
		"Opening window on %s":          "%s でウィンドウを開いています",
		"Window closed":                 "ウィンドウが閉じられました",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",
		"Application exited":            "アプリケーションを終了しました",

		// Shell (debug)
		"Launching %s":                       "%s を起動中",
		"Launching browser in headless mode": "ヘッドレスモードでブラウザを起動中",
		"Launching browser in app mode":      "アプリモードでブラウザを起動中",
		"Binding %s installed":               "バインディング %s を登録しました",
		"Browser connection lost":            "ブラウザとの接続が切断されました",
		"Browser closed":                     "ブラウザを閉じました",

		// Front end (debug)
		"Front-end server listening on %s": "フロントエンドサーバーを %s で待ち受け中",

		// Dispatch (debug)
		"Invoking %s (call %s)":                    "%s を実行中 (呼び出し %s)",
		"Command %s finished in %s (call %s)":      "コマンド %s が %s で完了しました (呼び出し %s)",
		"Command %s failed after %s (call %s): %s": "コマンド %s が %s 後に失敗しました (呼び出し %s): %s",
		"Rejected unknown command %s (call %s)":    "不明なコマンド %s を拒否しました (呼び出し %s)",

		// Warnings
		"Failed to deliver response for %s: %s": "%s の応答を返せませんでした: %s",
		"Failed to stop front-end server: %s":   "フロントエンドサーバーの停止に失敗しました: %s",
		"Failed to flush traces: %s":            "トレースのフラッシュに失敗しました: %s",

		// Errors
		"Failed to launch browser: %s": "ブラウザの起動に失敗しました: %s",
		"Front-end server stopped: %s": "フロントエンドサーバーが停止しました: %s",
		"Failed to open window: %s":    "ウィンドウを開けませんでした: %s",
	})
}
