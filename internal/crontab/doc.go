// Package crontab parses cron expressions into explicit value sets and
// finds the next instant a parsed expression fires.
//
// An expression is five fields (minute, hour, day of month, month, day of
// week) followed by a command, or a macro such as @daily followed by a
// command. Day of week uses ISO numbering, 1 (Monday) through 7 (Sunday);
// a literal 0 is read as Sunday.
package crontab
