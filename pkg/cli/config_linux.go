package cli

import "flag"

func (c *Config) registerFlagsOsSpecific(fs *flag.FlagSet) {
	fs.StringVar(&c.BtAdapterID, "bt-adapter", "", "ID of the Bluetooth adapter to use (e.g. hci1). Defaults to $REMOTE_BT_ADAPTER, then hci0.")
}
