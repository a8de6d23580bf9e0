package cmd

import "fmt"

// NotifyTestCmd sends a test desktop notification
type NotifyTestCmd struct{}

// Run executes the notify-test command
func (n *NotifyTestCmd) Run(cli *CLI) error {
	if !cli.Container.Runtime.Notifications {
		fmt.Println("Notifications are disabled in settings or PERRY_NO_NOTIFY")
		return nil
	}
	if err := cli.Container.NotificationService.SendTest(); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	fmt.Println("Notification sent")
	return nil
}
