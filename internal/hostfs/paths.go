package hostfs

// Well-known identity database locations, relative to the root.
const (
	EtcPasswdRel = "etc/passwd"
	EtcShadowRel = "etc/shadow"
	EtcGroupRel  = "etc/group"
)
