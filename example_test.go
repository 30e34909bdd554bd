package pgstatus

import "fmt"

func ExampleNew() {
	conn := New(&TestRawConn{
		DBFunc:            func() []byte { return []byte("app_db") },
		UserFunc:          func() []byte { return []byte("svc_user") },
		ServerVersionFunc: func() int { return 150003 },
	})

	status, err := conn.Status()
	if err != nil {
		fmt.Println("unexpected error")
		return
	}
	fmt.Println(conn.DB(), conn.User(), status, conn.ServerVersion())
	// Output: app_db svc_user ok 150003
}

func ExampleConn_TransactionStatus() {
	conn := New(&TestRawConn{
		TransactionStatusCodeFunc: func() int { return int(TxInError) },
	})

	txStatus, err := conn.TransactionStatus()
	if err != nil {
		fmt.Println("unexpected error")
		return
	}
	fmt.Println(txStatus)
	// Output: in failed transaction
}

func ExampleConn_SSLAttributeValue() {
	conn := New(&TestRawConn{
		SSLInUseFunc: func() int { return 1 },
		SSLAttributeFunc: func(name string) []byte {
			if name == "protocol" {
				return []byte("TLSv1.3")
			}
			return nil
		},
	})

	protocol, ok := conn.SSLAttributeValue(SSLProtocol)
	fmt.Println(conn.SSLInUse(), protocol, ok)

	_, ok = conn.SSLAttributeValue(SSLKeyBits)
	fmt.Println(ok)
	// Output:
	// true TLSv1.3 true
	// false
}
