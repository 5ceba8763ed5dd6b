package dbus

// Standard D-Bus method names
const (
	DBUS_INTERFACE = "org.freedesktop.DBus"

	BUS_LIST_NAMES  = DBUS_INTERFACE + ".ListNames"
	DBUS_PROP_IFACE = DBUS_INTERFACE + ".Properties"

	PROP_GET     = DBUS_PROP_IFACE + ".Get"
	PROP_SET     = DBUS_PROP_IFACE + ".Set"
	PROP_GET_ALL = DBUS_PROP_IFACE + ".GetAll"
)
