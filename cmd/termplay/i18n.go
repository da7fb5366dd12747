// Package main provides localization for the termplay CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Play video, audio and images as colorized ASCII art in the terminal.": "動画・音声・画像をカラーASCIIアートとして端末で再生します。",

		// Play command
		"stdout is not a terminal; playback needs one": "標準出力が端末ではありません。再生には端末が必要です",
		"Downloading %s...":                            "%s をダウンロードしています...",
		"Starting playback":                            "再生を開始します",
		"Interrupted, shutting down...":                "中断されました。終了しています...",
		"Playback finished":                            "再生が完了しました",
		"No audio device; nothing to play":             "音声デバイスがないため再生できません",

		// Media info
		"Media: %s (%s)":           "メディア: %s (%s)",
		"Duration: %s":             "再生時間: %s",
		"Video: %dx%d %.3g fps %s": "映像: %dx%d %.3g fps %s",
		"Audio: %d Hz, %d channels %s": "音声: %d Hz %dチャンネル %s",

		// Info command
		"Path":     "パス",
		"Type":     "種別",
		"Duration": "再生時間",
		"Video":    "映像",
		"Audio":    "音声",
		"channels": "チャンネル",

		// Diagnose command
		"Audio device unavailable: %s":             "音声デバイスを利用できません: %s",
		"Playback will run silently (video only).": "音声なし（映像のみ）で再生されます。",
		"Audio device initialized at %d Hz.":       "音声デバイスを %d Hz で初期化しました。",

		// Version command
		"termplay version %s": "termplay バージョン %s",
	})
}
