package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Scheduler
		"Playback paused":                     "再生を一時停止しました",
		"Playback resumed":                    "再生を再開しました",
		"Stop requested":                      "停止が要求されました",
		"Seeked to %s":                        "%s へシークしました",
		"Seek failed: %s":                     "シークに失敗しました: %s",
		"Looping back to the start":           "先頭に戻ってループ再生します",
		"Loop enabled":                        "ループ再生を有効にしました",
		"Loop disabled":                       "ループ再生を無効にしました",
		"Muted":                               "ミュートしました",
		"Unmuted":                             "ミュートを解除しました",
		"Volume: %d%%":                        "音量: %d%%",
		"Character map: %s":                   "文字マップ: %s",
		"Waiting for the decoder to catch up": "デコーダの追いつきを待っています",
		"Gave up waiting for audio to finish": "音声の完了待ちを打ち切りました",
		"Failed to write frame to terminal: %s": "端末へのフレーム書き込みに失敗しました: %s",
		"Failed to save frame text: %s":         "フレームテキストの保存に失敗しました: %s",
		"Failed to save frame image: %s":        "フレーム画像の保存に失敗しました: %s",

		// Decoder
		"Opening %s":                    "%s を開いています",
		"Video stream: %dx%d %s":       "映像ストリーム: %dx%d %s",
		"Audio stream: %d Hz %s":       "音声ストリーム: %d Hz %s",
		"Decode error: %s":             "デコードエラー: %s",
		"Decoding finished: %d frames": "デコード完了: %d フレーム",

		// Audio device
		"Audio initialized: %d Hz":       "音声を初期化しました: %d Hz",
		"Audio device unavailable: %s":   "音声デバイスを利用できません: %s",
		"Audio feeder stopped: %s":       "音声供給を停止しました: %s",

		// Terminal
		"Entering raw mode":    "端末をrawモードに切り替えます",
		"Terminal restored":    "端末を復元しました",
		"Terminal size: %dx%d": "端末サイズ: %dx%d",

		// Fetch and probe
		"Downloading %s":             "%s をダウンロード中",
		"Download complete: %s":      "ダウンロード完了: %s",
		"Probing %s":                 "%s を解析中",
		"Detected %s":                "%s を検出しました",

		// Debug sink
		"Debug artifacts in %s": "デバッグ成果物を %s に保存します",
	})
}
