// Package fifo computes cost-basis and open-position reports for tradable
// assets using First-In-First-Out lot accounting.
//
// The package folds a chronological trade log (security, action, quantity,
// price) into per-security queues of open lots, consuming the oldest lots
// first when a disposal occurs, and projects the surviving lots into one
// (security, total quantity, average cost) row per security.
//
// The core functionalities are:
//   - Trade Normalization: turning the four parallel columns of a raw trade
//     log into validated, typed Trade records.
//   - FIFO Ledger Engine: a single generic engine, configured by Rules, that
//     applies acquisition and disposal semantics per asset class. Equities
//     and crypto-assets are two configurations of the same engine, differing
//     only in their recognized action vocabulary and decimal precision.
//   - Position Aggregation: reducing each security's remaining open lots
//     into a summary row, in first-seen order.
//   - Data Persistence: encoding and decoding the trade log to and from a
//     human-readable JSONL file, and importing trades from arbitrary broker
//     JSON exports.
//
// All arithmetic uses decimal values; no floating-point math ever reaches
// the engine. This package serves as the foundational logic for the `pfm`
// command-line tool.
package fifo
