package desim

// Connection is a named, optionally delayed, directed edge from an owning
// Module to a peer Module. Send schedules delivery to the peer's
// HandleMessage after the connection's propagation delay. Reverse points
// at the matching connection installed on the peer, if any — a
// non-owning back-reference, never a second owner.
type Connection struct {
	name    string
	owner   Module
	peer    Module
	delay   float64
	reverse *Connection
}

// Name returns the connection's name within its owner's Connections map.
func (c *Connection) Name() string { return c.name }

// Peer returns the module this connection delivers to.
func (c *Connection) Peer() Module { return c.peer }

// Reverse returns the matching connection installed on the peer, or nil.
func (c *Connection) Reverse() *Connection { return c.reverse }

// Delay returns the connection's propagation delay.
func (c *Connection) Delay() float64 { return c.delay }

// SetDelay sets the propagation delay applied by Send.
func (c *Connection) SetDelay(delay float64) { c.delay = delay }

// Send schedules msg for delivery to the peer's HandleMessage, carrying
// this connection's reverse and the owning module as sender.
func (c *Connection) Send(sim *Scheduler, msg interface{}) {
	peer, reverse, owner := c.peer, c.reverse, c.owner
	sim.Schedule(c.delay, func() {
		peer.HandleMessage(msg, reverse, owner)
	})
}

// Connections is the name -> Connection map owned by a single Module.
type Connections struct {
	owner Module
	byName map[string]*Connection
}

// NewConnections builds an empty connection map for owner.
func NewConnections(owner Module) *Connections {
	return &Connections{owner: owner, byName: make(map[string]*Connection)}
}

// Set installs a connection named name to peer. When reverse is true, it
// also installs the matching reverse connection on peer (named rname, or
// name if rname is empty), and links the two as each other's Reverse.
// Returns the connection installed on owner.
func (c *Connections) Set(name string, peer Module, reverse bool, rname string) *Connection {
	conn := &Connection{name: name, owner: c.owner, peer: peer}
	c.byName[name] = conn
	if reverse {
		if rname == "" {
			rname = name
		}
		rev := &Connection{name: rname, owner: peer, peer: c.owner}
		peer.Connections().byName[rname] = rev
		conn.reverse = rev
		rev.reverse = conn
	}
	return conn
}

// Get returns the connection named name, or nil if absent.
func (c *Connections) Get(name string) *Connection {
	return c.byName[name]
}

// FindTo returns the first connection pointing at peer, or nil.
func (c *Connections) FindTo(peer Module) *Connection {
	for _, conn := range c.byName {
		if conn.peer == peer {
			return conn
		}
	}
	return nil
}

// AsMap returns a copy of the name -> Connection map.
func (c *Connections) AsMap() map[string]*Connection {
	out := make(map[string]*Connection, len(c.byName))
	for k, v := range c.byName {
		out[k] = v
	}
	return out
}
