package render

// audioThreadNiceness is the scheduling niceness considered appropriate for
// low-latency audio processing, shared by every media thread in the
// process.
const audioThreadNiceness = -10

// UseAudioThreadPriority raises the calling thread's scheduling priority to
// the shared media-thread value. The effect is confined to the calling
// thread; repeated calls are idempotent. Callers should have the OS thread
// locked (runtime.LockOSThread) for the change to stay with their
// goroutine.
func UseAudioThreadPriority() error {
	return setThreadNiceness(audioThreadNiceness)
}
